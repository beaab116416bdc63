/*
Copyright © 2025 changheonshin
*/
package organizer

import (
	"context"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/devlikebear/picsort/internal/ai"
	"github.com/devlikebear/picsort/internal/category"
	"github.com/devlikebear/picsort/internal/imaging"
	"github.com/devlikebear/picsort/internal/namer"
	"github.com/spf13/afero"
)

// Mode selects what happens to each image.
type Mode string

const (
	// ModeRename renames images in place using AI descriptions.
	ModeRename Mode = "rename"
	// ModeClassify moves images into category folders.
	ModeClassify Mode = "classify"
	// ModeBoth renames first, then moves the renamed file.
	ModeBoth Mode = "both"
)

// Options contains per-run options for the organizer.
type Options struct {
	Mode    Mode
	DryRun  bool
	Verbose bool
	// Smart asks the model for a free-form folder name instead of
	// matching against the canonical category table.
	Smart bool
	// MaxWidth bounds the image width before upload; 0 disables downscaling.
	MaxWidth uint
}

// Outcome records what happened to a single image. A non-nil Err means
// the item failed; the batch still continues.
type Outcome struct {
	Source   string
	Dest     string
	Category string
	// Fallback is set when the category came from the default bucket
	// after a failed or unusable model response.
	Fallback bool
	Err      error
}

// Stats aggregates the results of one run.
type Stats struct {
	Found       int
	Renamed     int
	Moved       int
	Failed      int
	PerCategory map[string]int
	Outcomes    []Outcome
}

// Failures returns the outcomes that ended in an error.
func (s *Stats) Failures() []Outcome {
	var failed []Outcome
	for _, o := range s.Outcomes {
		if o.Err != nil {
			failed = append(failed, o)
		}
	}
	return failed
}

// Organizer processes the images of a directory one at a time. It holds
// no state between runs; the filesystem is the only store.
type Organizer struct {
	fs       afero.Fs
	provider ai.Provider
	matcher  *category.Matcher
	out      io.Writer
}

// New creates an Organizer. A nil matcher falls back to the built-in
// category table.
func New(fs afero.Fs, provider ai.Provider, matcher *category.Matcher, out io.Writer) *Organizer {
	if matcher == nil {
		matcher = category.NewMatcher(nil)
	}
	return &Organizer{
		fs:       fs,
		provider: provider,
		matcher:  matcher,
		out:      out,
	}
}

// Run processes every image file directly inside dir (not recursive).
// Only the inability to enumerate dir itself aborts the run; any
// per-item failure is recorded and processing continues with the next
// image. The context is checked between items so an interrupt stops the
// batch without leaving a half-moved file behind.
func (o *Organizer) Run(ctx context.Context, dir string, opts Options) (*Stats, error) {
	entries, err := afero.ReadDir(o.fs, dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read directory %s: %w", dir, err)
	}

	var images []string
	for _, entry := range entries {
		if !entry.IsDir() && imaging.IsSupported(entry.Name()) {
			images = append(images, entry.Name())
		}
	}

	stats := &Stats{Found: len(images), PerCategory: make(map[string]int)}
	if len(images) == 0 {
		fmt.Fprintf(o.out, "No image files found in %s\n", dir)
		return stats, nil
	}

	fmt.Fprintf(o.out, "Found %d image(s) to process (mode: %s)\n", len(images), opts.Mode)

	for _, name := range images {
		select {
		case <-ctx.Done():
			return stats, ctx.Err()
		default:
		}

		fmt.Fprintf(o.out, "\nProcessing: %s\n", name)
		outcome := o.processOne(ctx, dir, name, opts)
		stats.Outcomes = append(stats.Outcomes, outcome)

		if outcome.Err != nil {
			stats.Failed++
			fmt.Fprintf(o.out, "  ✗ %v\n", outcome.Err)
			continue
		}
		if opts.Mode == ModeRename || opts.Mode == ModeBoth {
			stats.Renamed++
		}
		if outcome.Category != "" {
			stats.Moved++
			stats.PerCategory[outcome.Category]++
		}
	}

	return stats, nil
}

func (o *Organizer) processOne(ctx context.Context, dir, fileName string, opts Options) Outcome {
	src := filepath.Join(dir, fileName)
	outcome := Outcome{Source: src}
	ext := strings.ToLower(filepath.Ext(fileName))

	img, err := imaging.Load(o.fs, src)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	img, err = imaging.Downscale(img, opts.MaxWidth)
	if err != nil {
		outcome.Err = err
		return outcome
	}

	// current tracks where the file lives right now; the move step
	// below always works on it instead of re-probing for the renamed
	// path.
	current := src

	if opts.Mode == ModeRename || opts.Mode == ModeBoth {
		desc, err := o.provider.DescribeImage(ctx, img)
		if err != nil {
			outcome.Err = fmt.Errorf("describe request failed: %w", err)
			return outcome
		}
		base := namer.Sanitize(desc)
		if opts.Verbose {
			fmt.Fprintf(o.out, "  → AI suggested name: %s\n", base)
		}

		dest, err := namer.ResolvePath(o.fs, dir, base, ext)
		if err != nil {
			outcome.Err = err
			return outcome
		}
		if opts.DryRun {
			fmt.Fprintf(o.out, "  → Would rename to: %s\n", filepath.Base(dest))
		} else {
			if err := o.fs.Rename(current, dest); err != nil {
				outcome.Err = fmt.Errorf("rename failed: %w", err)
				return outcome
			}
			fmt.Fprintf(o.out, "  → Renamed to: %s\n", filepath.Base(dest))
		}
		// In a dry run this is where the file would live, which is what
		// the reported final location is based on.
		current = dest
		outcome.Dest = dest
	}

	if opts.Mode == ModeRename {
		return outcome
	}

	cat := o.resolveCategory(ctx, img, opts, &outcome)
	outcome.Category = cat

	destDir := filepath.Join(dir, cat)
	base := strings.TrimSuffix(filepath.Base(current), filepath.Ext(current))

	if opts.DryRun {
		outcome.Dest = filepath.Join(destDir, base+ext)
		fmt.Fprintf(o.out, "  → Would move to: %s/%s\n", cat, base+ext)
		return outcome
	}

	if err := o.fs.MkdirAll(destDir, 0755); err != nil {
		outcome.Err = fmt.Errorf("failed to create directory %s: %w", destDir, err)
		return outcome
	}
	dest, err := namer.ResolvePath(o.fs, destDir, base, ext)
	if err != nil {
		outcome.Err = err
		return outcome
	}
	if err := o.fs.Rename(current, dest); err != nil {
		outcome.Err = fmt.Errorf("move failed: %w", err)
		return outcome
	}
	outcome.Dest = dest
	fmt.Fprintf(o.out, "  → Moved to: %s/%s\n", cat, filepath.Base(dest))
	return outcome
}

// resolveCategory determines the destination category, falling back to
// the default bucket when the request fails.
func (o *Organizer) resolveCategory(ctx context.Context, img imaging.Image, opts Options, outcome *Outcome) string {
	if opts.Smart {
		label, err := o.provider.SuggestCategory(ctx, img)
		if err != nil {
			fmt.Fprintf(o.out, "  ⚠️  category request failed, using %q: %v\n", category.DefaultBucket, err)
			outcome.Fallback = true
			return category.DefaultBucket
		}
		cat := namer.Sanitize(label)
		if opts.Verbose {
			fmt.Fprintf(o.out, "  → AI suggested category: %s\n", cat)
		}
		return cat
	}

	label, err := o.provider.ClassifyImage(ctx, img, o.matcher.Names())
	if err != nil {
		fmt.Fprintf(o.out, "  ⚠️  classify request failed, using %q: %v\n", category.DefaultBucket, err)
		outcome.Fallback = true
		return category.DefaultBucket
	}
	cat := o.matcher.Match(label)
	if opts.Verbose {
		fmt.Fprintf(o.out, "  → Classified as: %s\n", cat)
	}
	return cat
}
