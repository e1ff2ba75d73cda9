// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package classroom

import (
	"testing"

	"github.com/danielhkuo/classroom-quorum/models"
)

func TestIssuer_Sequence(t *testing.T) {
	issuer := NewIssuer()
	for want := 1; want <= 5; want++ {
		if got := issuer.Next(); got != want {
			t.Fatalf("Next() = %d, want %d", got, want)
		}
	}
}

func TestRegistry_RegisterOrGetTeacher(t *testing.T) {
	r := NewRegistry()

	alice := r.RegisterOrGetTeacher(1, "Alice")
	if alice.VotedToStart || alice.VotedToEnd {
		t.Fatal("new teacher should start with no votes")
	}
	alice.VotedToStart = true

	// Same identity again, even with another name, returns the stored record
	again := r.RegisterOrGetTeacher(1, "Mallory")
	if again != alice {
		t.Fatal("expected the existing record to be returned")
	}
	if !again.VotedToStart {
		t.Error("re-registering must not reset votes")
	}
	if again.Name != "Alice" {
		t.Errorf("expected name Alice, got %s", again.Name)
	}

	r.RegisterOrGetTeacher(2, "Bob")
	if r.TeacherCount() != 2 {
		t.Errorf("expected 2 teachers, got %d", r.TeacherCount())
	}
}

func TestRegistry_TeachersSorted(t *testing.T) {
	r := NewRegistry()
	for _, id := range []int{7, 3, 5} {
		r.RegisterOrGetTeacher(id, "")
	}

	teachers := r.Teachers()
	if len(teachers) != 3 {
		t.Fatalf("expected 3 teachers, got %d", len(teachers))
	}
	for i, want := range []int{3, 5, 7} {
		if teachers[i].ID != want {
			t.Errorf("teachers[%d].ID = %d, want %d", i, teachers[i].ID, want)
		}
	}

	// Copies, not the stored records
	teachers[0].VotedToStart = true
	if r.teachers[3].VotedToStart {
		t.Error("Teachers() leaked a stored record")
	}
}

func TestRegistry_NegativeTotals(t *testing.T) {
	r := NewRegistry()
	r.RecordStudentDelta(4)
	r.RecordStudentDelta(-6)

	if r.StudentCount() != -2 {
		t.Errorf("expected -2 students, got %d", r.StudentCount())
	}
}

func TestRegistry_Doors(t *testing.T) {
	r := NewRegistry()
	r.RecordDoor(models.Door{ID: 4, Name: "Main entrance", AmountOfStudents: 3})
	r.RecordDoor(models.Door{ID: 4, Name: "Main entrance", AmountOfStudents: -1})
	r.RecordDoor(models.Door{ID: 9, Name: "Side door"})

	if r.DoorCount() != 2 {
		t.Errorf("expected 2 doors, got %d", r.DoorCount())
	}
	// Door bookkeeping does not move the student count by itself
	if r.StudentCount() != 0 {
		t.Errorf("expected 0 students, got %d", r.StudentCount())
	}
}
