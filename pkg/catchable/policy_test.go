package catchable_test

import (
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/dkoosis/catchable/pkg/catchable"
)

func TestParsePolicy_DecodesActions_When_DocumentIsValid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		doc  string
		want catchable.Policy
	}{
		{name: "empty document", doc: "", want: catchable.Policy{}},
		{
			name: "both keys",
			doc:  "on_error: skip\non_panic: stop\n",
			want: catchable.Policy{OnError: catchable.Skip, OnPanic: catchable.Stop},
		},
		{
			name: "case and whitespace are ignored",
			doc:  "on_error: ' Stop '\n",
			want: catchable.Policy{OnError: catchable.Stop},
		},
		{
			name: "explicit propagate",
			doc:  "on_panic: propagate\n",
			want: catchable.Policy{OnPanic: catchable.Propagate},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := catchable.ParsePolicy([]byte(tt.doc))
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParsePolicy_ReturnsError_When_DocumentIsInvalid(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		doc       string
		wantIsErr error
	}{
		{name: "unknown action", doc: "on_error: retry\n", wantIsErr: catchable.ErrUnknownAction},
		{name: "non-scalar action", doc: "on_error: [skip]\n", wantIsErr: catchable.ErrUnknownAction},
		{name: "unknown key", doc: "on_failure: skip\n"},
		{name: "not a mapping", doc: "- skip\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			_, err := catchable.ParsePolicy([]byte(tt.doc))
			require.Error(t, err)
			if tt.wantIsErr != nil {
				require.ErrorIs(t, err, tt.wantIsErr)
			}
		})
	}
}

func TestLoadPolicy_ReadsFile_When_PathExists(t *testing.T) {
	t.Parallel()

	p, err := catchable.LoadPolicy(filepath.Join("testdata", "skip_panics.yaml"))
	require.NoError(t, err)
	assert.Equal(t, catchable.Policy{OnError: catchable.Skip, OnPanic: catchable.Stop}, p)
}

func TestLoadPolicy_ReturnsError_When_FileIsMissingOrInvalid(t *testing.T) {
	t.Parallel()

	_, err := catchable.LoadPolicy(filepath.Join(t.TempDir(), "missing.yaml"))
	require.ErrorIs(t, err, os.ErrNotExist)

	_, err = catchable.LoadPolicy(filepath.Join("testdata", "unknown_action.yaml"))
	require.ErrorIs(t, err, catchable.ErrUnknownAction)
	assert.Contains(t, err.Error(), "unknown_action.yaml")
}

func TestPolicyHandler_DistinguishesPanics(t *testing.T) {
	t.Parallel()

	h := catchable.Policy{OnError: catchable.Skip, OnPanic: catchable.Stop}.Handler()

	assert.Equal(t, catchable.Skip, h(errors.New("plain")))
	assert.Equal(t, catchable.Stop, h(&catchable.PanicError{Value: "boom"}))
	assert.Equal(t, catchable.Propagate, catchable.Policy{}.Handler()(errors.New("plain")))
}

func TestAction_RoundTripsThroughText(t *testing.T) {
	t.Parallel()

	for _, a := range []catchable.Action{catchable.Propagate, catchable.Skip, catchable.Stop} {
		text, err := a.MarshalText()
		require.NoError(t, err)

		var back catchable.Action
		require.NoError(t, back.UnmarshalText(text))
		assert.Equal(t, a, back)
	}

	_, err := catchable.Action(42).MarshalText()
	require.ErrorIs(t, err, catchable.ErrUnknownAction)
	assert.Equal(t, "Action(42)", catchable.Action(42).String())
}

func TestPolicy_MarshalsToYAML(t *testing.T) {
	t.Parallel()

	out, err := yaml.Marshal(catchable.Policy{OnError: catchable.Skip})
	require.NoError(t, err)
	assert.Equal(t, "on_error: skip\non_panic: propagate\n", string(out))
}

// scenario is one entry of testdata/scenarios.yaml.
type scenario struct {
	Name       string           `yaml:"name"`
	Policy     catchable.Policy `yaml:"policy"`
	Input      []string         `yaml:"input"`
	Want       []int            `yaml:"want"`
	WantErrors int              `yaml:"want_errors"`
}

func TestPolicy_Scenarios(t *testing.T) {
	t.Parallel()

	data, err := os.ReadFile(filepath.Join("testdata", "scenarios.yaml"))
	require.NoError(t, err)

	var scenarios []scenario
	require.NoError(t, yaml.Unmarshal(data, &scenarios))
	require.NotEmpty(t, scenarios)

	parse := func(s string) (int, error) {
		if s == "panic" {
			panic("parser bug")
		}
		return strconv.Atoi(s)
	}

	for _, sc := range scenarios {
		t.Run(sc.Name, func(t *testing.T) {
			t.Parallel()

			c := catchable.Select(catchable.FromSlice(sc.Input...), parse).Catch(sc.Policy.Handler())
			values, errs := drain[int](c)

			if diff := cmp.Diff(sc.Want, values, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("values mismatch (-want +got):\n%s", diff)
			}
			assert.Len(t, errs, sc.WantErrors)
		})
	}
}
