package validation

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"

	"notes-service/internal/models"
)

var (
	datePattern  = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	moneyPattern = regexp.MustCompile(`^-?\d+(\.\d+)?$`)
)

// ParseMoney normalizes a locale-tolerant numeric string into a float.
// Spaces are stripped; when a comma is present it is taken as the decimal
// separator and any dots as thousands separators, so "1.234,56" and
// "1234.56" normalize to the same value. The second return is false for
// anything that is not a plain finite decimal number.
func ParseMoney(s string) (float64, bool) {
	norm := strings.ReplaceAll(strings.TrimSpace(s), " ", "")
	if strings.Contains(norm, ",") {
		norm = strings.ReplaceAll(norm, ".", "")
		norm = strings.Replace(norm, ",", ".", 1)
	}
	if !moneyPattern.MatchString(norm) {
		return 0, false
	}
	v, err := strconv.ParseFloat(norm, 64)
	if err != nil {
		return 0, false
	}
	return v, true
}

// ValidDate reports whether s is a literal YYYY-MM-DD string naming a real
// calendar date. Shape alone is not enough: 2024-02-30 fails.
func ValidDate(s string) bool {
	if !datePattern.MatchString(s) {
		return false
	}
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

// ProjectForm holds the raw string fields of a create/update submission.
type ProjectForm struct {
	ProjectName   string
	TotalAmount   string
	ClientName    string
	DeliveryDate  string
	Status        string
	Notes         string
	PendingAmount string
}

// ProjectInput is a fully validated, normalized submission.
type ProjectInput struct {
	ProjectName   string
	TotalAmount   float64
	ClientName    string
	DeliveryDate  string
	Status        string
	Notes         string
	PendingAmount float64
}

// Validate checks every field and returns either a normalized input or a
// single error naming all failing fields. All-or-nothing: a submission with
// any invalid field produces no partial result.
func (f ProjectForm) Validate() (*ProjectInput, error) {
	var bad []string

	projectName := strings.TrimSpace(f.ProjectName)
	if projectName == "" {
		bad = append(bad, "project_name")
	}

	clientName := strings.TrimSpace(f.ClientName)
	if clientName == "" {
		bad = append(bad, "client_name")
	}

	totalAmount, ok := ParseMoney(f.TotalAmount)
	if !ok {
		bad = append(bad, "total_amount")
	}

	pendingAmount, ok := ParseMoney(f.PendingAmount)
	if !ok {
		bad = append(bad, "pending_amount")
	}

	deliveryDate := strings.TrimSpace(f.DeliveryDate)
	if !ValidDate(deliveryDate) {
		bad = append(bad, "delivery_date")
	}

	status := strings.TrimSpace(f.Status)
	if !models.ValidStatus(status) {
		bad = append(bad, "status")
	}

	if len(bad) > 0 {
		return nil, fmt.Errorf("invalid fields: %s", strings.Join(bad, ", "))
	}

	return &ProjectInput{
		ProjectName:   projectName,
		TotalAmount:   totalAmount,
		ClientName:    clientName,
		DeliveryDate:  deliveryDate,
		Status:        status,
		Notes:         strings.TrimSpace(f.Notes),
		PendingAmount: pendingAmount,
	}, nil
}
