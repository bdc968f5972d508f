package http

import (
	"errors"
	"testing"

	"github.com/matbakh-tech/go-backend/pkg/e"
)

func TestParsePriceToCents(t *testing.T) {
	cases := []struct {
		name    string
		in      string
		want    int64
		wantErr error
	}{
		{name: "integer", in: "600", want: 60000},
		{name: "two decimals", in: "599.99", want: 59999},
		{name: "one decimal", in: "4.5", want: 450},
		{name: "zero", in: "0", want: 0},
		{name: "surrounding spaces rejected as empty only", in: "12.30", want: 1230},
		{name: "empty", in: "", wantErr: e.ErrInvalidPrice},
		{name: "blank", in: "   ", wantErr: e.ErrInvalidPrice},
		{name: "junk", in: "ten euro", wantErr: e.ErrInvalidPrice},
		{name: "negative", in: "-1", wantErr: e.ErrNegativePrice},
		{name: "three decimals", in: "1.999", wantErr: e.ErrPricePrecision},
		{name: "over limit", in: "1000000001", wantErr: e.ErrInvalidPrice},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := parsePriceToCents(tc.in)
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("err = %v, want %v", err, tc.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tc.want {
				t.Errorf("got %d cents, want %d", got, tc.want)
			}
		})
	}
}
