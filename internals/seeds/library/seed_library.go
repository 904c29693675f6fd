// file: internals/seeds/library/seed_library.go
package library

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	libraryModel "schoolku_backend/internals/features/school/library/model"
	peopleModel "schoolku_backend/internals/features/school/people/model"
	"schoolku_backend/internals/seeds/namegen"
)

var bookCategories = []string{"Fiction", "Science", "Mathematics", "History", "Reference", "Biography"}

var bookTitleStems = []string{
	"Introduction to", "Foundations of", "A History of", "The World of",
	"Essentials of", "Stories from", "Adventures in", "Understanding",
}

var bookTopics = []string{
	"Algebra", "the Nile", "Physics", "Ancient Kingdoms", "Chemistry",
	"Geometry", "African Literature", "the Red Sea", "Astronomy", "Geography",
	"Poetry", "World Maps", "the Human Body",
}

// SeedLibrary creates the book catalog and a borrow history for the
// first slice of students. Books key on (school, code); borrow records
// on (user, book).
func SeedLibrary(db *gorm.DB, schoolID uuid.UUID, students []peopleModel.StudentModel, bookCount int, gen *namegen.Generator) error {
	log.Printf("📥 Seeding library: %d books...", bookCount)

	books := make([]libraryModel.BookModel, 0, bookCount)
	for i := 1; i <= bookCount; i++ {
		title := fmt.Sprintf("%s %s, Vol. %d",
			bookTitleStems[gen.Intn(len(bookTitleStems))],
			bookTopics[gen.Intn(len(bookTopics))],
			1+gen.Intn(3),
		)
		book := libraryModel.BookModel{
			BookSchoolID: schoolID,
			BookCode:     fmt.Sprintf("BK-%04d", i),
			BookTitle:    title,
			BookAuthor:   gen.FullName(gen.Gender()),
			BookCategory: bookCategories[(i-1)%len(bookCategories)],
			BookCopies:   1 + gen.Intn(4),
		}
		if err := db.
			Where("book_school_id = ? AND book_code = ?", schoolID, book.BookCode).
			FirstOrCreate(&book).Error; err != nil {
			return fmt.Errorf("upsert book %s: %w", book.BookCode, err)
		}
		books = append(books, book)
	}

	// Borrow history: up to 30 students, one book each.
	borrowers := students
	if len(borrowers) > 30 {
		borrowers = borrowers[:30]
	}
	now := time.Now().UTC()
	for i, student := range borrowers {
		if len(books) == 0 {
			break
		}
		book := books[i%len(books)]
		borrowedAt := now.AddDate(0, 0, -7-gen.Intn(21))
		record := libraryModel.BorrowRecordModel{
			BorrowRecordSchoolID:   schoolID,
			BorrowRecordUserID:     student.StudentUserID,
			BorrowRecordBookID:     book.BookID,
			BorrowRecordBorrowedAt: borrowedAt,
			BorrowRecordDueAt:      borrowedAt.AddDate(0, 0, 14),
			BorrowRecordStatus:     libraryModel.BorrowStatusBorrowed,
		}
		switch i % 3 {
		case 0:
			returnedAt := borrowedAt.AddDate(0, 0, 10)
			record.BorrowRecordReturnedAt = &returnedAt
			record.BorrowRecordStatus = libraryModel.BorrowStatusReturned
		case 1:
			if record.BorrowRecordDueAt.Before(now) {
				record.BorrowRecordStatus = libraryModel.BorrowStatusOverdue
			}
		}
		if err := db.
			Where("borrow_record_user_id = ? AND borrow_record_book_id = ?",
				student.StudentUserID, book.BookID).
			FirstOrCreate(&record).Error; err != nil {
			return fmt.Errorf("upsert borrow record %s/%s: %w", student.StudentAdmissionNo, book.BookCode, err)
		}
	}

	log.Printf("✅ Library ready: %d books, %d borrow records", len(books), len(borrowers))
	return nil
}
