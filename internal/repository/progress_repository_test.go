package repository

import (
	"course_mgmt_backend/internal/model"
	"testing"
)

func TestSetCompletedUpserts(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)

	instructor := createUser(t, db, "teacher", true)
	student := createUser(t, db, "student", false)
	course := createCourse(t, db, instructor.ID, "Go 入门", true)
	lesson := createLesson(t, db, course.ID, "第一课", 0, true)

	// 从未标记过的课时视为未完成
	done, err := repo.IsCompleted(student.ID, lesson.ID)
	if err != nil {
		t.Fatalf("IsCompleted: %v", err)
	}
	if done {
		t.Fatal("expected incomplete for never-marked lesson")
	}

	if err := repo.SetCompleted(student.ID, lesson.ID, true); err != nil {
		t.Fatalf("SetCompleted(true): %v", err)
	}

	progress, err := repo.Find(student.ID, lesson.ID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if !progress.IsCompleted {
		t.Fatal("expected completed after SetCompleted(true)")
	}
	if progress.CompletedAt == nil {
		t.Fatal("expected completed_at to be set")
	}

	// 取消完成：记录保留，completed_at 清空
	if err := repo.SetCompleted(student.ID, lesson.ID, false); err != nil {
		t.Fatalf("SetCompleted(false): %v", err)
	}

	progress, err = repo.Find(student.ID, lesson.ID)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if progress.IsCompleted {
		t.Fatal("expected incomplete after SetCompleted(false)")
	}
	if progress.CompletedAt != nil {
		t.Fatalf("expected completed_at cleared, got %v", progress.CompletedAt)
	}

	// 重复取消是幂等的
	if err := repo.SetCompleted(student.ID, lesson.ID, false); err != nil {
		t.Fatalf("repeated SetCompleted(false): %v", err)
	}

	var count int64
	if err := db.Model(&model.LessonProgress{}).
		Where("user_id = ? AND lesson_id = ?", student.ID, lesson.ID).
		Count(&count).Error; err != nil {
		t.Fatalf("count progress rows: %v", err)
	}
	if count != 1 {
		t.Fatalf("progress rows = %d, want 1 (upsert, not append)", count)
	}
}

func TestCountCompletedByUser(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)

	instructor := createUser(t, db, "teacher", true)
	student := createUser(t, db, "student", false)
	course := createCourse(t, db, instructor.ID, "Go 入门", true)
	l1 := createLesson(t, db, course.ID, "第一课", 0, true)
	l2 := createLesson(t, db, course.ID, "第二课", 1, true)
	l3 := createLesson(t, db, course.ID, "第三课", 2, true)

	if err := repo.SetCompleted(student.ID, l1.ID, true); err != nil {
		t.Fatalf("SetCompleted: %v", err)
	}
	if err := repo.SetCompleted(student.ID, l2.ID, true); err != nil {
		t.Fatalf("SetCompleted: %v", err)
	}
	// 取消的不计入
	if err := repo.SetCompleted(student.ID, l2.ID, false); err != nil {
		t.Fatalf("SetCompleted: %v", err)
	}
	_ = l3

	count, err := repo.CountCompletedByUser(student.ID)
	if err != nil {
		t.Fatalf("CountCompletedByUser: %v", err)
	}
	if count != 1 {
		t.Fatalf("completed count = %d, want 1", count)
	}
}

func TestCompletedSet(t *testing.T) {
	db := newTestDB(t)
	repo := NewProgressRepository(db)

	instructor := createUser(t, db, "teacher", true)
	student := createUser(t, db, "student", false)
	course := createCourse(t, db, instructor.ID, "Go 入门", true)
	l1 := createLesson(t, db, course.ID, "第一课", 0, true)
	l2 := createLesson(t, db, course.ID, "第二课", 1, true)

	if err := repo.SetCompleted(student.ID, l1.ID, true); err != nil {
		t.Fatalf("SetCompleted: %v", err)
	}

	completed, err := repo.CompletedSet(student.ID, []uint{l1.ID, l2.ID})
	if err != nil {
		t.Fatalf("CompletedSet: %v", err)
	}
	if !completed[l1.ID] {
		t.Fatal("expected l1 completed")
	}
	if completed[l2.ID] {
		t.Fatal("expected l2 incomplete")
	}
}
