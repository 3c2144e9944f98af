package usecase

import (
	"context"
	"errors"
	"testing"
)

func TestSubjectList(t *testing.T) {
	uc := NewSubjectUsecase()

	got := uc.List(context.Background())
	if len(got) != 5 {
		t.Fatalf("len(subjects) = %d, want 5", len(got))
	}

	wantNames := []string{"Math", "Science", "Reading", "Social Studies", "Art & Music"}
	for i, subject := range got {
		if subject.ID != i+1 {
			t.Errorf("subject[%d].ID = %d, want %d", i, subject.ID, i+1)
		}
		if subject.Name != wantNames[i] {
			t.Errorf("subject[%d].Name = %q, want %q", i, subject.Name, wantNames[i])
		}
		if len(subject.Topics) == 0 {
			t.Errorf("subject %q has no topics", subject.Name)
		}
	}
}

func TestSubjectTopics(t *testing.T) {
	uc := NewSubjectUsecase()

	topics, err := uc.Topics(context.Background(), 3)
	if err != nil {
		t.Fatalf("Topics(3) returned error: %v", err)
	}
	if len(topics) != 6 || topics[0] != "Phonics" {
		t.Errorf("Topics(3) = %v", topics)
	}
}

func TestSubjectTopicsUnknown(t *testing.T) {
	uc := NewSubjectUsecase()

	if _, err := uc.Topics(context.Background(), 999); !errors.Is(err, ErrSubjectNotFound) {
		t.Errorf("Topics(999) error = %v, want ErrSubjectNotFound", err)
	}
}
