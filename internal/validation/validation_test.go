package validation

import (
	"strings"
	"testing"

	"github.com/theatrelog/api/internal/dto"
)

func strPtr(s string) *string { return &s }
func intPtr(i int) *int       { return &i }
func boolPtr(b bool) *bool    { return &b }

func validCreate() dto.OperationCreateRequest {
	return dto.OperationCreateRequest{
		PatientID:     "P-1001",
		Age:           intPtr(57),
		OperationDate: "2026-08-01",
		OperatorName:  "J Smith",
		OperatorLevel: "Consultant",
		Operation:     "Laparoscopic cholecystectomy",
		Hospital:      "Royal Infirmary",
		IsPrivate:     boolPtr(false),
	}
}

func TestOperationCreate_Valid(t *testing.T) {
	req := validCreate()
	if err := Struct(&req); err != nil {
		t.Fatalf("expected valid payload, got: %v", err)
	}
}

func TestOperationCreate_AgeBoundaries(t *testing.T) {
	cases := []struct {
		age  int
		want bool // want valid
	}{
		{-1, false},
		{0, true},
		{150, true},
		{151, false},
	}

	for _, tc := range cases {
		req := validCreate()
		req.Age = intPtr(tc.age)
		err := Struct(&req)
		if tc.want && err != nil {
			t.Errorf("age=%d: expected valid, got %v", tc.age, err)
		}
		if !tc.want && err == nil {
			t.Errorf("age=%d: expected validation failure", tc.age)
		}
	}
}

func TestOperationCreate_AgeZeroWithRequired(t *testing.T) {
	// age is a pointer so an explicit 0 still satisfies required.
	req := validCreate()
	req.Age = intPtr(0)
	if err := Struct(&req); err != nil {
		t.Fatalf("age=0 must be accepted: %v", err)
	}

	req.Age = nil
	if err := Struct(&req); err == nil {
		t.Fatal("missing age must be rejected")
	}
}

func TestOperationCreate_EnumValues(t *testing.T) {
	req := validCreate()
	req.OperatorLevel = "Specialist Registrar"
	req.Urgency = strPtr("Elective")
	req.ASAGrade = strPtr("ASA III")
	if err := Struct(&req); err != nil {
		t.Fatalf("expected valid enums, got: %v", err)
	}

	req.OperatorLevel = "consultant" // case-sensitive
	if err := Struct(&req); err == nil {
		t.Fatal("lowercased operator level must be rejected")
	}

	req = validCreate()
	req.ASAGrade = strPtr("ASA VII")
	if err := Struct(&req); err == nil {
		t.Fatal("unknown ASA grade must be rejected")
	}
}

func TestOperationCreate_CollectsAllErrors(t *testing.T) {
	req := validCreate()
	req.PatientID = ""
	req.Age = intPtr(200)
	req.Hospital = ""

	err := Struct(&req)
	if err == nil {
		t.Fatal("expected validation failure")
	}
	msg := err.Error()
	for _, want := range []string{"patientId", "age", "hospital"} {
		if !strings.Contains(msg, want) {
			t.Errorf("joined message %q missing field %q", msg, want)
		}
	}
}

func TestRegister_Rules(t *testing.T) {
	req := dto.RegisterRequest{UserID: "ab", Password: "12345"}
	if err := Struct(&req); err == nil {
		t.Fatal("short userId and password must be rejected")
	}

	req = dto.RegisterRequest{UserID: "surgeon1", Password: "secret1"}
	if err := Struct(&req); err != nil {
		t.Fatalf("expected valid register payload, got: %v", err)
	}

	req.Email = strPtr("not-an-email")
	if err := Struct(&req); err == nil {
		t.Fatal("invalid email must be rejected")
	}
}

func TestLogin_Rules(t *testing.T) {
	if err := Struct(&dto.LoginRequest{}); err == nil {
		t.Fatal("empty login must be rejected")
	}
	if err := Struct(&dto.LoginRequest{UserID: "a", Password: "b"}); err != nil {
		t.Fatalf("minimal login must be accepted, got: %v", err)
	}
}

func TestPaginationQuery_Rules(t *testing.T) {
	q := dto.PaginationQuery{Page: 2, Limit: 10, SortBy: "hospital", SortOrder: "asc"}
	if err := Struct(&q); err != nil {
		t.Fatalf("expected valid query, got: %v", err)
	}

	q = dto.PaginationQuery{Limit: 101}
	if err := Struct(&q); err == nil {
		t.Fatal("limit above 100 must be rejected")
	}

	q = dto.PaginationQuery{SortBy: "password_hash"}
	if err := Struct(&q); err == nil {
		t.Fatal("sortBy outside the allow-list must be rejected")
	}
}

func TestCPDCreate_Rules(t *testing.T) {
	hours := 2.5
	req := dto.CPDCreateRequest{
		Title:         "ATLS refresher",
		Category:      "Course",
		Hours:         &hours,
		DateCompleted: "2026-05-10",
	}
	if err := Struct(&req); err != nil {
		t.Fatalf("expected valid CPD payload, got: %v", err)
	}

	bad := -1.0
	req.Hours = &bad
	if err := Struct(&req); err == nil {
		t.Fatal("negative hours must be rejected")
	}
}
