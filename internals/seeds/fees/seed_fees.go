// file: internals/seeds/fees/seed_fees.go
package fees

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	feesModel "schoolku_backend/internals/features/school/fees/model"
	peopleModel "schoolku_backend/internals/features/school/people/model"
	"schoolku_backend/internals/seeds/namegen"
	"schoolku_backend/internals/seeds/profile"
)

// SeedFees creates one tuition structure per grade, assigns it to every
// student of that grade for the academic year, and records a payment for
// roughly 70% of assignments. Receipt numbers derive from the admission
// number so reruns hit the same natural keys.
func SeedFees(db *gorm.DB, schoolID uuid.UUID, students []peopleModel.StudentModel, p *profile.TenantProfile, gen *namegen.Generator) error {
	log.Println("📥 Seeding fee structures & payments...")

	structureByGrade := make(map[int]feesModel.FeeStructureModel, len(p.Grades))
	for _, grade := range p.Grades {
		name := fmt.Sprintf("Tuition Grade %d", grade)
		structure := feesModel.FeeStructureModel{
			FeeStructureSchoolID:     schoolID,
			FeeStructureName:         name,
			FeeStructureGrade:        grade,
			FeeStructureAcademicYear: p.AcademicYear,
			FeeStructureAmount:       int64(200000 + grade*10000), // cents
		}
		if err := db.
			Where("fee_structure_school_id = ? AND fee_structure_name = ? AND fee_structure_grade = ? AND fee_structure_academic_year = ?",
				schoolID, name, grade, p.AcademicYear).
			FirstOrCreate(&structure).Error; err != nil {
			return fmt.Errorf("upsert fee structure %s: %w", name, err)
		}
		structureByGrade[grade] = structure
	}

	payments := 0
	for i, student := range students {
		structure, ok := structureByGrade[student.StudentGrade]
		if !ok {
			continue
		}
		assignment := feesModel.FeeAssignmentModel{
			FeeAssignmentSchoolID:       schoolID,
			FeeAssignmentStudentID:      student.StudentID,
			FeeAssignmentFeeStructureID: structure.FeeStructureID,
			FeeAssignmentAcademicYear:   p.AcademicYear,
			FeeAssignmentAmountDue:      structure.FeeStructureAmount,
		}
		if err := db.
			Where("fee_assignment_student_id = ? AND fee_assignment_fee_structure_id = ? AND fee_assignment_academic_year = ?",
				student.StudentID, structure.FeeStructureID, p.AcademicYear).
			FirstOrCreate(&assignment).Error; err != nil {
			return fmt.Errorf("upsert fee assignment %s: %w", student.StudentAdmissionNo, err)
		}

		// ~70% of students have paid something.
		if i%10 >= 7 {
			continue
		}
		amount := assignment.FeeAssignmentAmountDue
		status := feesModel.PaymentStatusPaid
		if i%5 == 0 { // some partial payers
			amount = amount / 2
			status = feesModel.PaymentStatusPartial
		}
		method := []string{
			feesModel.PaymentMethodCash,
			feesModel.PaymentMethodTransfer,
			feesModel.PaymentMethodCard,
		}[gen.Intn(3)]
		payment := feesModel.PaymentModel{
			PaymentSchoolID:        schoolID,
			PaymentFeeAssignmentID: assignment.FeeAssignmentID,
			PaymentReceiptNo:       fmt.Sprintf("RCPT-%s-%s-1", p.SchoolDomain, student.StudentAdmissionNo),
			PaymentAmount:          amount,
			PaymentMethod:          method,
			PaymentStatus:          status,
			PaymentPaidAt:          time.Now().UTC().AddDate(0, 0, -gen.Intn(60)),
		}
		if err := db.
			Where("payment_receipt_no = ?", payment.PaymentReceiptNo).
			FirstOrCreate(&payment).Error; err != nil {
			return fmt.Errorf("upsert payment %s: %w", payment.PaymentReceiptNo, err)
		}
		payments++
	}

	log.Printf("✅ Fees ready: %d structures, %d assignments, %d payments",
		len(structureByGrade), len(students), payments)
	return nil
}
