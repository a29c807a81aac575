// Package tui implements the terminal soft descriptor editor.
package tui

import (
	"context"

	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/service"
	"github.com/MKhiriev/go-soft-descriptor/models"
	tea "github.com/charmbracelet/bubbletea"
)

type TUI struct {
	services  *service.ClientServices
	buildInfo models.AppBuildInfo

	logger *logger.Logger
}

func New(services *service.ClientServices, buildInfo models.AppBuildInfo, logger *logger.Logger) (*TUI, error) {
	return &TUI{services: services, buildInfo: buildInfo, logger: logger}, nil
}

// Edit runs the editor until the user quits and returns the descriptor as it
// was left on screen.
func (t *TUI) Edit(ctx context.Context, initial models.SoftDescriptor) (models.SoftDescriptor, error) {
	model := newEditorModel(ctx, t.services.DescriptorService, t.buildInfo, initial)
	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.SoftDescriptor{}, err
	}

	result, ok := finalModel.(editorModel)
	if !ok {
		return models.SoftDescriptor{}, tea.ErrProgramKilled
	}

	d := result.descriptor()
	t.logger.Debug().
		Str("merchant_id", d.MerchantID).
		Str("scheme", d.Scheme().String()).
		Msg("editor closed")
	return d, nil
}
