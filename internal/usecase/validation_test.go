package usecase_test

import (
	. "github.com/academiq/academiq/internal/usecase"

	"testing"

	testhelpers "github.com/academiq/academiq/internal/test"
)

func validContactSubmission() ContactSubmission {
	return ContactSubmission{
		FullName:    "Sara Ali",
		Email:       "sara@example.com",
		Phone:       "+971501234567",
		Subject:     "Question about statistics",
		ServiceType: "statistics",
		Message:     "I need help with my survey data.",
	}
}

func validOrderSubmission() OrderSubmission {
	return OrderSubmission{
		FullName:    "Omar Haddad",
		Email:       "omar@example.com",
		Phone:       "+971501234567",
		ServiceType: "thesis",
		Message:     "Chapter three methodology review.",
	}
}

func TestValidateContactAccepts(t *testing.T) {
	if errs := ValidateContact(validContactSubmission()); errs != nil {
		t.Fatalf("unexpected validation errors: %v", errs)
	}
}

func TestValidateContactPhoneIsOptional(t *testing.T) {
	sub := validContactSubmission()
	sub.Phone = ""
	if errs := ValidateContact(sub); errs != nil {
		t.Fatalf("empty phone should be accepted on contact form, got %v", errs)
	}
}

func TestValidateContactReportsEveryFailingField(t *testing.T) {
	errs := ValidateContact(ContactSubmission{})
	if errs == nil {
		t.Fatal("expected validation errors for empty submission")
	}
	for _, field := range []string{"full_name", "email", "subject", "service_type", "message"} {
		if len(errs[field]) == 0 {
			t.Fatalf("expected error for field %q, got %v", field, errs)
		}
	}
	if len(errs["phone"]) != 0 {
		t.Fatalf("optional phone should not fail when empty, got %v", errs["phone"])
	}
}

func TestValidateContactAllowsGeneralInquiry(t *testing.T) {
	sub := validContactSubmission()
	sub.ServiceType = "general"
	if errs := ValidateContact(sub); errs != nil {
		t.Fatalf("general inquiry should be a valid contact choice, got %v", errs)
	}
}

func TestValidateContactSubjectLength(t *testing.T) {
	sub := validContactSubmission()
	sub.Subject = testhelpers.RandomASCIIString(201, 201)
	errs := ValidateContact(sub)
	if len(errs["subject"]) == 0 {
		t.Fatalf("expected subject length error, got %v", errs)
	}

	sub.Subject = testhelpers.RandomASCIIString(200, 200)
	if errs := ValidateContact(sub); errs != nil {
		t.Fatalf("subject of 200 characters should pass, got %v", errs)
	}
}

func TestValidateOrderRequiresPhone(t *testing.T) {
	sub := validOrderSubmission()
	sub.Phone = ""
	errs := ValidateOrder(sub)
	if len(errs["phone"]) == 0 {
		t.Fatalf("expected required phone error, got %v", errs)
	}
	if errs["phone"][0] != MsgRequired {
		t.Fatalf("unexpected message %q", errs["phone"][0])
	}
}

func TestValidateOrderRejectsGeneralInquiry(t *testing.T) {
	sub := validOrderSubmission()
	sub.ServiceType = "general"
	errs := ValidateOrder(sub)
	if len(errs["service_type"]) == 0 {
		t.Fatalf("general inquiry is not an orderable service, got %v", errs)
	}
}

func TestPhonePattern(t *testing.T) {
	valid := []string{"+971501234567", "0501234567", "+15551234567", "123456789"}
	invalid := []string{"12345678", "phone", "+971-50-123", "+9715012345678901"}

	for _, phone := range valid {
		sub := validOrderSubmission()
		sub.Phone = phone
		if errs := ValidateOrder(sub); len(errs["phone"]) != 0 {
			t.Fatalf("phone %q should be accepted, got %v", phone, errs["phone"])
		}
	}
	for _, phone := range invalid {
		sub := validOrderSubmission()
		sub.Phone = phone
		errs := ValidateOrder(sub)
		if len(errs["phone"]) == 0 {
			t.Fatalf("phone %q should be rejected", phone)
		}
		if errs["phone"][0] != MsgInvalidPhone {
			t.Fatalf("unexpected message for %q: %q", phone, errs["phone"][0])
		}
	}
}

func TestValidateOrderInvalidEmail(t *testing.T) {
	sub := validOrderSubmission()
	sub.Email = "not-an-email"
	errs := ValidateOrder(sub)
	if len(errs["email"]) == 0 || errs["email"][0] != MsgInvalidEmail {
		t.Fatalf("expected invalid email message, got %v", errs)
	}
}
