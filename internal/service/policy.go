package service

import (
	"course_mgmt_backend/internal/model"
	"course_mgmt_backend/internal/util"
)

// 访问控制决策集中在这里，全部是纯函数：只依赖传入的事实，
// 不做任何存储查询。拒绝原因各自独立（未发布 / 未选课 / 非课程
// 讲师），便于排查，但对外都映射为 403。

// CanViewCourse 课程详情及其课时列表的可见性：
// 课程讲师本人，或（已发布且已选课）的用户
func CanViewCourse(user *model.User, course *model.Course, enrolled bool) error {
	if course.InstructorID == user.ID {
		return nil
	}
	if !course.IsPublished {
		return util.ErrCourseNotPublished
	}
	if !enrolled {
		return util.ErrNotEnrolled
	}
	return nil
}

// CanModifyCourse 更新/删除课程、在课程下增删课时：
// 必须是讲师，且必须是该课程的讲师（其他讲师同样拒绝）
func CanModifyCourse(user *model.User, course *model.Course) error {
	if !user.IsInstructor {
		return util.ErrPermissionDenied
	}
	if course.InstructorID != user.ID {
		return util.ErrNotCourseOwner
	}
	return nil
}

// CanEnroll 只允许报名已发布课程；重复报名由账本的唯一约束拒绝
func CanEnroll(course *model.Course) error {
	if !course.IsPublished {
		return util.ErrCourseNotPublished
	}
	return nil
}

// CanToggleProgress 标记完成/取消完成要求已选该课时所在课程。
// 讲师不豁免：未选自己课程的讲师同样无法打进度
func CanToggleProgress(enrolled bool) error {
	if !enrolled {
		return util.ErrNotEnrolled
	}
	return nil
}

// CanViewLesson 单独读取课时：选课或课程讲师；
// 未发布课时仅课程讲师可见
func CanViewLesson(user *model.User, lesson *model.Lesson, course *model.Course, enrolled bool) error {
	isOwner := course.InstructorID == user.ID
	if !enrolled && !isOwner {
		return util.ErrNotEnrolled
	}
	if !lesson.IsPublished && !isOwner {
		return util.ErrLessonNotPublished
	}
	return nil
}
