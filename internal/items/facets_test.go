package items

import (
	"reflect"
	"testing"

	"github.com/lib/pq"
)

// Years come off the wire as a Postgres integer[]; pq only scans those into
// []int64, so the read path must go through the conversion.
func TestFacetYears_ScanRoundTrip(t *testing.T) {
	var years []int64
	if err := pq.Array(&years).Scan([]byte("{1999,2004}")); err != nil {
		t.Fatalf("scan integer[]: %v", err)
	}

	got := intsFromInt64(years)
	if want := []int{1999, 2004}; !reflect.DeepEqual(got, want) {
		t.Errorf("years = %v, want %v", got, want)
	}
}

func TestIntsFromInt64_Empty(t *testing.T) {
	got := intsFromInt64(nil)
	if got == nil || len(got) != 0 {
		t.Errorf("intsFromInt64(nil) = %v, want empty non-nil slice", got)
	}
}
