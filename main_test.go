package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runGrade(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"grade"}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestGradeCommand(t *testing.T) {
	tests := []struct {
		marks string
		want  string
	}{
		{"100", "100\tA+\temerald\n"},
		{"90", "90\tA+\temerald\n"},
		{"89", "89\tA\tblue\n"},
		{"75", "75\tB\tviolet\n"},
		{"60", "60\tC\tamber\n"},
		{"50", "50\tD\tred\n"},
		{"0", "0\tF\tcrimson\n"},
	}
	for _, tt := range tests {
		t.Run(tt.marks, func(t *testing.T) {
			out, err := runGrade(t, tt.marks)
			require.NoError(t, err)
			assert.Equal(t, tt.want, out)
		})
	}
}

func TestGradeCommandRejectsBadMarks(t *testing.T) {
	_, err := runGrade(t, "abc")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "whole number")

	_, err = runGrade(t, "101")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "between 0 and 100")

	_, err = runGrade(t)
	assert.Error(t, err)
}
