package app

import (
	"context"
	"fmt"

	"github.com/google/renameio/v2"
	"github.com/specialistvlad/tailgrid/internal/config"
	"github.com/specialistvlad/tailgrid/internal/ctxlog"
)

// Export writes m to path in the format implied by the extension. The file
// is replaced atomically; readers never see a partial record.
func (a *App) Export(ctx context.Context, m *config.Model, path string) error {
	logger := ctxlog.FromContext(a.withLogger(ctx))

	format, err := FormatFor(path)
	if err != nil {
		return err
	}
	data, err := format.Encode(m)
	if err != nil {
		return fmt.Errorf("encode %s: %w", format.Name(), err)
	}

	pendingFile, err := renameio.NewPendingFile(path, renameio.WithPermissions(0o644), renameio.WithExistingPermissions())
	if err != nil {
		return fmt.Errorf("create pending file: %w", err)
	}
	defer func() {
		if err := pendingFile.Cleanup(); err != nil {
			logger.Debug("Cleanup of pending file failed.", "error", err)
		}
	}()

	if _, err := pendingFile.Write(data); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	if err := pendingFile.CloseAtomicallyReplace(); err != nil {
		return fmt.Errorf("atomically replace %s: %w", path, err)
	}

	logger.Info("Configuration written.", "path", path, "format", format.Name(), "bytes", len(data))
	return nil
}
