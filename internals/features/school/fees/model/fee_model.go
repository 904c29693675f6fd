// file: internals/features/school/fees/model/fee_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	PaymentMethodCash     = "cash"
	PaymentMethodTransfer = "transfer"
	PaymentMethodCard     = "card"

	PaymentStatusPaid    = "paid"
	PaymentStatusPartial = "partial"
	PaymentStatusPending = "pending"
)

// FeeStructureModel is a fee template per (grade, academic year).
type FeeStructureModel struct {
	// PK & tenant
	FeeStructureID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:fee_structure_id" json:"fee_structure_id"`
	FeeStructureSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_fee_structures_key;column:fee_structure_school_id" json:"fee_structure_school_id"`

	FeeStructureName         string `gorm:"type:varchar(120);not null;uniqueIndex:uq_fee_structures_key;column:fee_structure_name" json:"fee_structure_name"`
	FeeStructureGrade        int    `gorm:"not null;uniqueIndex:uq_fee_structures_key;column:fee_structure_grade" json:"fee_structure_grade"`
	FeeStructureAcademicYear string `gorm:"type:varchar(24);not null;uniqueIndex:uq_fee_structures_key;column:fee_structure_academic_year" json:"fee_structure_academic_year"`
	FeeStructureAmount       int64  `gorm:"not null;column:fee_structure_amount" json:"fee_structure_amount"`
	FeeStructureCurrency     string `gorm:"type:varchar(8);not null;default:'USD';column:fee_structure_currency" json:"fee_structure_currency"`

	FeeStructureCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:fee_structure_created_at" json:"fee_structure_created_at"`
	FeeStructureUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:fee_structure_updated_at" json:"fee_structure_updated_at"`
	FeeStructureDeletedAt gorm.DeletedAt `gorm:"column:fee_structure_deleted_at;index" json:"fee_structure_deleted_at,omitempty"`
}

func (FeeStructureModel) TableName() string { return "fee_structures" }

// FeeAssignmentModel binds a structure to a student for an academic year;
// the (student, structure, year) triple is unique.
type FeeAssignmentModel struct {
	// PK & tenant
	FeeAssignmentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:fee_assignment_id" json:"fee_assignment_id"`
	FeeAssignmentSchoolID uuid.UUID `gorm:"type:uuid;not null;column:fee_assignment_school_id" json:"fee_assignment_school_id"`

	FeeAssignmentStudentID      uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_fee_assignments_triple;column:fee_assignment_student_id" json:"fee_assignment_student_id"`
	FeeAssignmentFeeStructureID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_fee_assignments_triple;column:fee_assignment_fee_structure_id" json:"fee_assignment_fee_structure_id"`
	FeeAssignmentAcademicYear   string    `gorm:"type:varchar(24);not null;uniqueIndex:uq_fee_assignments_triple;column:fee_assignment_academic_year" json:"fee_assignment_academic_year"`

	FeeAssignmentAmountDue int64 `gorm:"not null;column:fee_assignment_amount_due" json:"fee_assignment_amount_due"`

	FeeAssignmentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:fee_assignment_created_at" json:"fee_assignment_created_at"`
	FeeAssignmentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:fee_assignment_updated_at" json:"fee_assignment_updated_at"`
	FeeAssignmentDeletedAt gorm.DeletedAt `gorm:"column:fee_assignment_deleted_at;index" json:"fee_assignment_deleted_at,omitempty"`
}

func (FeeAssignmentModel) TableName() string { return "fee_assignments" }

// PaymentModel references a fee assignment of the same school; the receipt
// number is globally unique.
type PaymentModel struct {
	// PK & tenant
	PaymentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:payment_id" json:"payment_id"`
	PaymentSchoolID uuid.UUID `gorm:"type:uuid;not null;column:payment_school_id" json:"payment_school_id"`

	PaymentFeeAssignmentID uuid.UUID `gorm:"type:uuid;not null;column:payment_fee_assignment_id" json:"payment_fee_assignment_id"`

	PaymentReceiptNo string    `gorm:"type:varchar(40);not null;uniqueIndex:uq_payments_receipt_no;column:payment_receipt_no" json:"payment_receipt_no"`
	PaymentAmount    int64     `gorm:"not null;column:payment_amount" json:"payment_amount"`
	PaymentMethod    string    `gorm:"type:varchar(16);not null;column:payment_method" json:"payment_method"`
	PaymentStatus    string    `gorm:"type:varchar(16);not null;default:'paid';column:payment_status" json:"payment_status"`
	PaymentPaidAt    time.Time `gorm:"type:timestamptz;not null;column:payment_paid_at" json:"payment_paid_at"`

	PaymentCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:payment_created_at" json:"payment_created_at"`
	PaymentUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:payment_updated_at" json:"payment_updated_at"`
	PaymentDeletedAt gorm.DeletedAt `gorm:"column:payment_deleted_at;index" json:"payment_deleted_at,omitempty"`
}

func (PaymentModel) TableName() string { return "payments" }
