package application

import (
	"errors"
	"testing"

	"worklog/internal/domain"
)

func TestValidateRequired(t *testing.T) {
	tests := []struct {
		name      string
		fieldName string
		value     string
		wantErr   bool
	}{
		{
			name:      "valid value",
			fieldName: "content",
			value:     "完成需求评审",
			wantErr:   false,
		},
		{
			name:      "empty string",
			fieldName: "content",
			value:     "",
			wantErr:   true,
		},
		{
			name:      "whitespace only",
			fieldName: "content",
			value:     "   ",
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateRequired(tt.fieldName, tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRequired() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil {
				var valErr *ValidationError
				if !errors.As(err, &valErr) {
					t.Errorf("expected ValidationError, got %T", err)
				}
				if valErr.Field != tt.fieldName {
					t.Errorf("expected field %s, got %s", tt.fieldName, valErr.Field)
				}
			}
		})
	}
}

func TestValidateDate(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid date", value: "2026-08-31", wantErr: false},
		{name: "empty", value: "", wantErr: true},
		{name: "wrong layout", value: "31/08/2026", wantErr: true},
		{name: "impossible day", value: "2026-02-30", wantErr: true},
		{name: "missing zero padding", value: "2026-8-31", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateDate("date", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateDate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidateClock(t *testing.T) {
	tests := []struct {
		name    string
		value   string
		wantErr bool
	}{
		{name: "valid time", value: "09:30", wantErr: false},
		{name: "midnight", value: "00:00", wantErr: false},
		{name: "empty", value: "", wantErr: true},
		{name: "hour out of range", value: "25:00", wantErr: true},
		{name: "with seconds", value: "09:30:00", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateClock("time", tt.value)
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateClock() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestValidatePeriod(t *testing.T) {
	for _, p := range []domain.Period{domain.PeriodToday, domain.PeriodWeek, domain.PeriodMonth, domain.PeriodYear} {
		if err := ValidatePeriod("period", p); err != nil {
			t.Errorf("ValidatePeriod(%s) = %v, want nil", p, err)
		}
	}

	if err := ValidatePeriod("period", domain.Period("decade")); err == nil {
		t.Error("expected error for unknown period")
	}
}
