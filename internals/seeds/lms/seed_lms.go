// file: internals/seeds/lms/seed_lms.go
package lms

import (
	"fmt"
	"log"

	"github.com/google/uuid"
	"gorm.io/gorm"

	curriculumModel "schoolku_backend/internals/features/school/curriculum/model"
	lmsModel "schoolku_backend/internals/features/school/lms/model"
	peopleModel "schoolku_backend/internals/features/school/people/model"
	helper "schoolku_backend/internals/helpers"
	"schoolku_backend/internals/seeds/profile"
)

const (
	chaptersPerCourse = 3
	lessonsPerChapter = 3
)

// SeedLMS publishes one streaming course for each of the first two core
// subjects, each with 3 chapters of 3 lessons. The first lesson of every
// course is free preview material. Slugs key idempotency per school.
func SeedLMS(db *gorm.DB, schoolID uuid.UUID, coreSubjects []curriculumModel.SubjectModel, teachers []peopleModel.TeacherModel, p *profile.TenantProfile) error {
	log.Println("📥 Seeding LMS courses...")

	subjects := coreSubjects
	if len(subjects) > 2 {
		subjects = subjects[:2]
	}

	courseCount := 0
	lessonCount := 0
	for i, subject := range subjects {
		title := fmt.Sprintf("%s Essentials %s", subject.SubjectName, p.AcademicYear)
		course := lmsModel.StreamCourseModel{
			StreamCourseSchoolID:    schoolID,
			StreamCourseTitle:       title,
			StreamCourseSlug:        helper.GenerateSlug(title),
			StreamCourseIsPublished: true,
		}
		subjectID := subject.SubjectID
		course.StreamCourseSubjectID = &subjectID
		if len(teachers) > 0 {
			teacherID := teachers[i%len(teachers)].TeacherID
			course.StreamCourseTeacherID = &teacherID
		}
		desc := fmt.Sprintf("Recorded lessons covering the %s %s curriculum.", p.AcademicYear, subject.SubjectName)
		course.StreamCourseDesc = &desc
		if err := db.
			Where("stream_course_school_id = ? AND stream_course_slug = ?", schoolID, course.StreamCourseSlug).
			FirstOrCreate(&course).Error; err != nil {
			return fmt.Errorf("upsert course %s: %w", course.StreamCourseSlug, err)
		}
		courseCount++

		for c := 1; c <= chaptersPerCourse; c++ {
			chapter := lmsModel.StreamChapterModel{
				StreamChapterSchoolID:   schoolID,
				StreamChapterCourseID:   course.StreamCourseID,
				StreamChapterTitle:      fmt.Sprintf("Chapter %d", c),
				StreamChapterOrderIndex: c,
			}
			if err := db.
				Where("stream_chapter_course_id = ? AND stream_chapter_order_index = ?", course.StreamCourseID, c).
				FirstOrCreate(&chapter).Error; err != nil {
				return fmt.Errorf("upsert chapter %d of %s: %w", c, course.StreamCourseSlug, err)
			}

			for l := 1; l <= lessonsPerChapter; l++ {
				lesson := lmsModel.StreamLessonModel{
					StreamLessonSchoolID:        schoolID,
					StreamLessonChapterID:       chapter.StreamChapterID,
					StreamLessonTitle:           fmt.Sprintf("Lesson %d.%d", c, l),
					StreamLessonOrderIndex:      l,
					StreamLessonIsFree:          c == 1 && l == 1,
					StreamLessonDurationSeconds: 300 + 60*((c*lessonsPerChapter+l)%5),
				}
				if err := db.
					Where("stream_lesson_chapter_id = ? AND stream_lesson_order_index = ?", chapter.StreamChapterID, l).
					FirstOrCreate(&lesson).Error; err != nil {
					return fmt.Errorf("upsert lesson %d.%d of %s: %w", c, l, course.StreamCourseSlug, err)
				}
				lessonCount++
			}
		}
	}

	log.Printf("✅ LMS ready: %d courses, %d lessons", courseCount, lessonCount)
	return nil
}
