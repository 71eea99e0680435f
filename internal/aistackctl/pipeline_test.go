package aistackctl

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func namedSteps(record *[]string, names ...string) []Step {
	steps := make([]Step, 0, len(names))
	for _, name := range names {
		name := name
		steps = append(steps, Step{Name: name, Run: func(*Deployment) error {
			*record = append(*record, name)
			return nil
		}})
	}
	return steps
}

func TestRunPipelineOrder(t *testing.T) {
	t.Parallel()

	var ran []string
	d := &Deployment{}
	err := RunPipeline(d, namedSteps(&ran, "one", "two", "three"), PipelineOptions{})
	require.NoError(t, err)
	assert.Equal(t, []string{"one", "two", "three"}, ran)
}

func TestRunPipelineShortCircuits(t *testing.T) {
	t.Parallel()

	var ran []string
	boom := errors.New("boom")
	steps := []Step{
		namedSteps(&ran, "first")[0],
		{Name: "second", Run: func(*Deployment) error { return boom }},
		namedSteps(&ran, "third")[0],
	}

	err := RunPipeline(&Deployment{}, steps, PipelineOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
	assert.Contains(t, err.Error(), "second")
	assert.Equal(t, []string{"first"}, ran)
}

func TestRunPipelineTLSDowngradeAccepted(t *testing.T) {
	t.Parallel()

	var ran []string
	steps := []Step{
		{Name: "issue tls certificate", Run: func(*Deployment) error {
			return fmt.Errorf("%w for n8n.example.com: exit status 1", ErrTLSUnavailable)
		}},
		namedSteps(&ran, "after")[0],
	}

	d := &Deployment{}
	asked := false
	err := RunPipeline(d, steps, PipelineOptions{
		ContinueWithoutTLS: func(cause error) bool {
			asked = true
			assert.True(t, errors.Is(cause, ErrTLSUnavailable))
			return true
		},
	})
	require.NoError(t, err)
	assert.True(t, asked)
	assert.True(t, d.SkipTLS)
	assert.Equal(t, []string{"after"}, ran)
}

func TestRunPipelineTLSDowngradeDeclined(t *testing.T) {
	t.Parallel()

	steps := []Step{
		{Name: "issue tls certificate", Run: func(*Deployment) error {
			return fmt.Errorf("%w: exit status 1", ErrTLSUnavailable)
		}},
	}

	d := &Deployment{}
	err := RunPipeline(d, steps, PipelineOptions{
		ContinueWithoutTLS: func(error) bool { return false },
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTLSUnavailable))
	assert.False(t, d.SkipTLS)
}

func TestRunPipelineTLSFatalWithoutCallback(t *testing.T) {
	t.Parallel()

	steps := []Step{
		{Name: "issue tls certificate", Run: func(*Deployment) error {
			return ErrTLSUnavailable
		}},
	}
	err := RunPipeline(&Deployment{}, steps, PipelineOptions{})
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrTLSUnavailable))
}

func TestRunPipelineNonTLSErrorNotDowngradable(t *testing.T) {
	t.Parallel()

	boom := errors.New("network down")
	steps := []Step{{Name: "clone repository", Run: func(*Deployment) error { return boom }}}

	err := RunPipeline(&Deployment{}, steps, PipelineOptions{
		ContinueWithoutTLS: func(error) bool { return true },
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, boom))
}

func TestBuildInstallStepsOrder(t *testing.T) {
	t.Parallel()

	want := []string{
		"detect operating system",
		"install packages",
		"configure firewall",
		"clone repository",
		"resolve environment file",
		"write deployment record",
		"configure reverse proxy",
		"issue tls certificate",
		"pull stack images",
		"register service",
		"verify deployment",
	}
	steps := BuildInstallSteps(nil)
	require.Len(t, steps, len(want))
	for i, step := range steps {
		assert.Equal(t, want[i], step.Name)
		assert.NotNil(t, step.Run)
	}
}
