// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classroom

import (
	"sort"

	"github.com/danielhkuo/classroom-quorum/models"
)

// Registry tracks known teachers with their vote flags, known doors, and
// the aggregate student count.
type Registry struct {
	teachers map[int]*models.Teacher
	doors    map[int]models.Door
	students int
}

func NewRegistry() *Registry {
	return &Registry{
		teachers: make(map[int]*models.Teacher),
		doors:    make(map[int]models.Door),
	}
}

// RegisterOrGetTeacher returns the teacher registered under id, creating it
// with both vote flags false if it is unknown. An existing record is
// returned unchanged so a teacher polling repeatedly keeps its votes.
func (r *Registry) RegisterOrGetTeacher(id int, name string) *models.Teacher {
	if t, ok := r.teachers[id]; ok {
		return t
	}
	t := &models.Teacher{ID: id, Name: name}
	r.teachers[id] = t
	return t
}

// RecordStudentDelta adds delta to the student count. Negative totals are
// kept as reported.
func (r *Registry) RecordStudentDelta(delta int) {
	r.students += delta
}

// RecordDoor remembers the latest report from a door.
func (r *Registry) RecordDoor(d models.Door) {
	r.doors[d.ID] = d
}

func (r *Registry) TeacherCount() int {
	return len(r.teachers)
}

func (r *Registry) StudentCount() int {
	return r.students
}

func (r *Registry) DoorCount() int {
	return len(r.doors)
}

// Teachers returns copies of all registered teachers ordered by identity.
func (r *Registry) Teachers() []models.Teacher {
	out := make([]models.Teacher, 0, len(r.teachers))
	for _, t := range r.teachers {
		out = append(out, *t)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

func (r *Registry) startVotes() []bool {
	votes := make([]bool, 0, len(r.teachers))
	for _, t := range r.teachers {
		votes = append(votes, t.VotedToStart)
	}
	return votes
}

func (r *Registry) endVotes() []bool {
	votes := make([]bool, 0, len(r.teachers))
	for _, t := range r.teachers {
		votes = append(votes, t.VotedToEnd)
	}
	return votes
}

func (r *Registry) clearVotes() {
	for _, t := range r.teachers {
		t.VotedToStart = false
		t.VotedToEnd = false
	}
}

func (r *Registry) resetStudents() {
	r.students = 0
}
