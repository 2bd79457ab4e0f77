package run

import (
	"github.com/Kush-Singh-26/blogbuilder/builder/metrics"
	"github.com/Kush-Singh-26/blogbuilder/builder/utils"
)

// copyResources copies the resources directory into the output without
// overwriting existing files.
func (b *Builder) copyResources(m *metrics.BuildMetrics) error {
	res, err := utils.CopyResources(
		b.SourceFs,
		b.DestFs,
		b.cfg.ResourcesPath(b.projectDir),
		b.cfg.OutputPath(b.projectDir),
		b.logger,
	)
	if err != nil {
		return err
	}

	m.ResourcesCopied = res.Copied
	m.ResourcesSkipped = len(res.Conflicts)
	return nil
}
