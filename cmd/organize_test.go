/*
Copyright © 2025 changheonshin
*/
package cmd

import (
	"bytes"
	"testing"

	"github.com/spf13/afero"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestOrganizeCommand_UnknownProvider(t *testing.T) {
	viper.Reset()
	viper.Set("ai_provider", "unknown")

	err := organizeCmd.RunE(organizeCmd, []string{"/pics"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown AI provider")
}

func TestRunOrganize(t *testing.T) {
	viper.Reset()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/pics/photo1.jpg", []byte("car"), 0644))

	mockProvider := new(MockProvider)
	mockProvider.On("DescribeImage", mock.Anything, mock.Anything).Return("red sports car", nil).Once()
	mockProvider.On("ClassifyImage", mock.Anything, mock.Anything, mock.Anything).Return("vehicles", nil).Once()

	err := runOrganize(organizeCmd, []string{"/pics"}, fs, mockProvider)
	assert.NoError(t, err)

	exists, err := afero.Exists(fs, "/pics/vehicles/red_sports_car.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	mockProvider.AssertExpectations(t)
}

func TestRunOrganize_SummaryOutput(t *testing.T) {
	viper.Reset()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/pics/photo1.jpg", []byte("car"), 0644))
	require.NoError(t, afero.WriteFile(fs, "/pics/photo2.jpg", []byte("dog"), 0644))

	mockProvider := new(MockProvider)
	mockProvider.On("DescribeImage", mock.Anything, mock.Anything).Return("some subject", nil)
	mockProvider.On("ClassifyImage", mock.Anything, mock.Anything, mock.Anything).Return("animals", nil)

	buf := new(bytes.Buffer)
	organizeCmd.SetOut(buf)
	defer organizeCmd.SetOut(nil)

	err := runOrganize(organizeCmd, []string{"/pics"}, fs, mockProvider)
	assert.NoError(t, err)

	output := buf.String()
	assert.Contains(t, output, "Run Summary")
	assert.Contains(t, output, "animals: 2 image(s)")
}

func TestRunOrganize_DescribeFailureLeavesFileInPlace(t *testing.T) {
	viper.Reset()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/pics/photo1.jpg", []byte("car"), 0644))

	mockProvider := new(MockProvider)
	mockProvider.On("DescribeImage", mock.Anything, mock.Anything).Return("", assert.AnError).Once()

	err := runOrganize(organizeCmd, []string{"/pics"}, fs, mockProvider)
	assert.NoError(t, err, "a per-item failure must not fail the command")

	exists, err := afero.Exists(fs, "/pics/photo1.jpg")
	require.NoError(t, err)
	assert.True(t, exists)

	mockProvider.AssertNotCalled(t, "ClassifyImage", mock.Anything, mock.Anything, mock.Anything)
}
