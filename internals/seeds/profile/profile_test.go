package profile

import "testing"

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*TenantProfile)
		wantErr bool
	}{
		{name: "demo profile is valid", mutate: func(p *TenantProfile) {}},
		{name: "port sudan profile is valid", mutate: func(p *TenantProfile) { *p = *PortSudan() }},
		{name: "missing school name", mutate: func(p *TenantProfile) { p.SchoolName = "" }, wantErr: true},
		{name: "missing domain", mutate: func(p *TenantProfile) { p.SchoolDomain = "" }, wantErr: true},
		{name: "bad domain", mutate: func(p *TenantProfile) { p.SchoolDomain = "no spaces allowed" }, wantErr: true},
		{name: "negative students", mutate: func(p *TenantProfile) { p.Students = -1 }, wantErr: true},
		{name: "zero teachers", mutate: func(p *TenantProfile) { p.Teachers = 0 }, wantErr: true},
		{name: "no grades", mutate: func(p *TenantProfile) { p.Grades = nil }, wantErr: true},
		{name: "grade out of range", mutate: func(p *TenantProfile) { p.Grades = []int{13} }, wantErr: true},
		{name: "short demo password", mutate: func(p *TenantProfile) { p.DemoPassword = "short" }, wantErr: true},
		{name: "unknown primary guardian", mutate: func(p *TenantProfile) { p.PrimaryGuardian = "grandma" }, wantErr: true},
		{name: "mother primary is allowed", mutate: func(p *TenantProfile) { p.PrimaryGuardian = "mother" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := Demo()
			tt.mutate(p)
			err := p.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
