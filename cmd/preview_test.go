package cmd

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"resub.dev/pkg/resub/internal/domain"
	domainmocks "resub.dev/pkg/resub/internal/domain/mocks"
	m "resub.dev/pkg/resub/internal/model"
)

func TestPreviewCmd_PassesRequest(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newPreviewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Preview", mock.Anything, domain.PreviewArgs{Request: m.RenameRequest{
		Folder:      "./docs",
		SearchText:  "report",
		ReplaceText: "summary",
	}}).Return(nil)

	cmd.SetArgs([]string{"preview", "./docs", "-s", "report", "-t", "summary"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestPreviewCmd_RecursiveFlag(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newPreviewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	mockWorkflow.On("Preview", mock.Anything, mock.MatchedBy(func(args domain.PreviewArgs) bool {
		return args.Request.IncludeSubfolders && args.Request.ReplaceText == ""
	})).Return(nil)

	cmd.SetArgs([]string{"preview", "./docs", "--search", "_draft", "--recursive"})
	err := cmd.Execute()
	require.NoError(t, err)
}

func TestPreviewCmd_ValidationErrorSilencesUsage(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newPreviewCmd())
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(out)

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	validationErr := &m.ValidationError{Field: "folder", Err: m.ErrFolderNotSelected}
	mockWorkflow.On("Preview", mock.Anything, mock.Anything).Return(validationErr)

	cmd.SetArgs([]string{"preview", "-s", "report"})
	err := cmd.Execute()
	require.ErrorIs(t, err, m.ErrFolderNotSelected)
	require.NotContains(t, out.String(), "Usage:")
}

func TestPreviewCmd_TooManyArgs(t *testing.T) {
	mockWorkflow := domainmocks.NewMockWorkflow(t)

	cmd := newRootCmd()
	cmd.AddCommand(newPreviewCmd())
	cmd.SetOut(&bytes.Buffer{})
	cmd.SetErr(&bytes.Buffer{})

	originalWorkflow := workflow
	workflow = mockWorkflow
	defer func() { workflow = originalWorkflow }()

	cmd.SetArgs([]string{"preview", "./a", "./b", "-s", "x"})
	err := cmd.Execute()
	require.Error(t, err)
}
