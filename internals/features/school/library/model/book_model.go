// file: internals/features/school/library/model/book_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	BorrowStatusBorrowed = "borrowed"
	BorrowStatusReturned = "returned"
	BorrowStatusOverdue  = "overdue"
)

type BookModel struct {
	// PK & tenant
	BookID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:book_id" json:"book_id"`
	BookSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_books_school_code;column:book_school_id" json:"book_school_id"`

	BookCode     string  `gorm:"type:varchar(24);not null;uniqueIndex:uq_books_school_code;column:book_code" json:"book_code"`
	BookTitle    string  `gorm:"type:varchar(200);not null;column:book_title" json:"book_title"`
	BookAuthor   string  `gorm:"type:varchar(160);not null;column:book_author" json:"book_author"`
	BookCategory string  `gorm:"type:varchar(80);not null;column:book_category" json:"book_category"`
	BookISBN     *string `gorm:"type:varchar(20);column:book_isbn" json:"book_isbn,omitempty"`
	BookCopies   int     `gorm:"not null;default:1;column:book_copies" json:"book_copies"`

	BookCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:book_created_at" json:"book_created_at"`
	BookUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:book_updated_at" json:"book_updated_at"`
	BookDeletedAt gorm.DeletedAt `gorm:"column:book_deleted_at;index" json:"book_deleted_at,omitempty"`
}

func (BookModel) TableName() string { return "books" }

// BorrowRecordModel is keyed by (user, book) with a date range and status.
type BorrowRecordModel struct {
	// PK & tenant
	BorrowRecordID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:borrow_record_id" json:"borrow_record_id"`
	BorrowRecordSchoolID uuid.UUID `gorm:"type:uuid;not null;column:borrow_record_school_id" json:"borrow_record_school_id"`

	BorrowRecordUserID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_borrow_records_pair;column:borrow_record_user_id" json:"borrow_record_user_id"`
	BorrowRecordBookID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_borrow_records_pair;column:borrow_record_book_id" json:"borrow_record_book_id"`

	BorrowRecordBorrowedAt time.Time  `gorm:"type:timestamptz;not null;column:borrow_record_borrowed_at" json:"borrow_record_borrowed_at"`
	BorrowRecordDueAt      time.Time  `gorm:"type:timestamptz;not null;column:borrow_record_due_at" json:"borrow_record_due_at"`
	BorrowRecordReturnedAt *time.Time `gorm:"type:timestamptz;column:borrow_record_returned_at" json:"borrow_record_returned_at,omitempty"`
	BorrowRecordStatus     string     `gorm:"type:varchar(16);not null;column:borrow_record_status" json:"borrow_record_status"`

	BorrowRecordCreatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:borrow_record_created_at" json:"borrow_record_created_at"`
	BorrowRecordUpdatedAt time.Time      `gorm:"type:timestamptz;not null;default:now();column:borrow_record_updated_at" json:"borrow_record_updated_at"`
	BorrowRecordDeletedAt gorm.DeletedAt `gorm:"column:borrow_record_deleted_at;index" json:"borrow_record_deleted_at,omitempty"`
}

func (BorrowRecordModel) TableName() string { return "borrow_records" }
