package client

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/MKhiriev/go-soft-descriptor/internal/logger"
	"github.com/MKhiriev/go-soft-descriptor/internal/service"
	"github.com/MKhiriev/go-soft-descriptor/models"
)

// Editor edits a descriptor interactively and returns the final value.
type Editor interface {
	Edit(ctx context.Context, initial models.SoftDescriptor) (models.SoftDescriptor, error)
}

type App struct {
	services *service.ClientServices
	editor   Editor
	out      io.Writer

	logger *logger.Logger
}

func NewApp(services *service.ClientServices, editor Editor, logger *logger.Logger) (*App, error) {
	if services == nil || services.DescriptorService == nil {
		return nil, errNoDescriptorService
	}

	return &App{
		services: services,
		editor:   editor,
		out:      os.Stdout,
		logger:   logger,
	}, nil
}

// Run opens the editor and, once it is closed, prints the descriptor the
// user ended up with together with the outcome of the local check.
func (a *App) Run() error {
	ctx := context.Background()

	d, err := a.editor.Edit(ctx, models.SoftDescriptor{})
	if err != nil {
		return fmt.Errorf("editor: %w", err)
	}

	errs := a.services.DescriptorService.Check(d)
	result := models.ValidationResult{
		Valid:  errs.IsEmpty(),
		Scheme: d.Scheme(),
		Errors: errs,
	}

	a.logger.Info().
		Bool("valid", result.Valid).
		Str("scheme", result.Scheme.String()).
		Msg("client finished")

	enc := json.NewEncoder(a.out)
	enc.SetIndent("", "  ")
	return enc.Encode(struct {
		Descriptor models.SoftDescriptor  `json:"soft_descriptor"`
		Result     models.ValidationResult `json:"result"`
	}{d, result})
}
