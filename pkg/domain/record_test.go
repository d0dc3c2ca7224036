package domain_test

import (
	"testing"

	"github.com/pegasus-cloud/pegasus/pkg/domain"
)

func TestStateOfRecord(t *testing.T) {
	type when struct {
		found bool
		valid bool
	}
	type then struct {
		state    domain.RecordState
		noRecord bool
	}

	for name, testcase := range map[string]struct {
		when
		then
	}{
		"when no row matches, it should be NotFound": {
			when{found: false, valid: false},
			then{state: domain.RecordNotFound, noRecord: true},
		},
		"when a row matches and is valid, it should be Active": {
			when{found: true, valid: true},
			then{state: domain.RecordActive, noRecord: false},
		},
		"when a row matches but is invalid, it should be Deleted": {
			when{found: true, valid: false},
			then{state: domain.RecordDeleted, noRecord: false},
		},
	} {
		t.Run(name, func(t *testing.T) {
			actual := domain.StateOfRecord(testcase.when.found, testcase.when.valid)
			if actual != testcase.then.state {
				t.Errorf("state = %s, want %s", actual, testcase.then.state)
			}
			if actual.NoRecord() != testcase.then.noRecord {
				t.Errorf("NoRecord() = %v, want %v", actual.NoRecord(), testcase.then.noRecord)
			}
		})
	}
}
