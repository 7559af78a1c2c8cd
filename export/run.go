// Package export drives the whole pipeline turning saved project documents
// into self-contained HTML gift files.
package export

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"runtime/debug"
	"strings"
	"time"

	cli "github.com/urfave/cli/v3"
	"go.uber.org/zap"

	"lovemedo/assets"
	"lovemedo/compile"
	"lovemedo/project"
	"lovemedo/state"
)

func Run(ctx context.Context, cmd *cli.Command) (err error) {
	if err := ctx.Err(); err != nil {
		return err
	}

	env := state.EnvFromContext(ctx)
	log := env.Log.Named("export")

	src := cmd.Args().Get(0)
	if len(src) == 0 {
		return errors.New("no input source has been specified")
	}
	src, err = filepath.Abs(src)
	if err != nil {
		return err
	}

	dst := cmd.Args().Get(1)
	if len(dst) == 0 {
		if dst, err = os.Getwd(); err != nil {
			return fmt.Errorf("unable to get working directory: %w", err)
		}
	}
	if dst, err = filepath.Abs(dst); err != nil {
		return err
	}
	if cmd.Args().Len() > 2 {
		log.Warn("Malformed command line, too many destinations", zap.Strings("ignoring", cmd.Args().Slice()[2:]))
	}

	env.NoDirs, env.Overwrite = cmd.Bool("nodirs"), cmd.Bool("overwrite")

	client := &http.Client{Timeout: env.Cfg.Network.Timeout()}

	log.Info("Processing starting", zap.String("source", src), zap.String("destination", dst))
	defer func(start time.Time) {
		log.Info("Processing completed", zap.Duration("elapsed", time.Since(start)))
	}(time.Now())

	fi, err := os.Stat(src)
	if err != nil {
		return fmt.Errorf("input source was not found (%s): %w", src, err)
	}

	if fi.Mode().IsDir() {
		return processDir(ctx, client, src, dst, log)
	}
	if !fi.Mode().IsRegular() {
		return fmt.Errorf("unexpected path mode for (%s)", src)
	}
	return processProject(ctx, client, src, filepath.Base(src), dst, log)
}

// processDir walks a directory tree finding project files and exports each.
func processDir(ctx context.Context, client *http.Client, dir, dst string, log *zap.Logger) (err error) {
	count := 0
	defer func() {
		if err == nil && count == 0 {
			log.Debug("Nothing to process", zap.String("dir", dir))
		}
	}()

	err = filepath.Walk(dir, func(path string, info os.FileInfo, err error) error {
		if err := ctx.Err(); err != nil {
			return err
		}

		if err != nil {
			log.Warn("Skipping path", zap.String("path", path), zap.Error(err))
			return nil
		}
		if !info.Mode().IsRegular() {
			return nil
		}
		if !strings.EqualFold(filepath.Ext(path), ".json") {
			log.Debug("Skipping file, not recognized as project", zap.String("file", path))
			return nil
		}

		count++

		src := strings.TrimPrefix(strings.TrimPrefix(path, dir), string(filepath.Separator))
		if err := processProject(ctx, client, path, src, dst, log); err != nil {
			log.Error("Unable to process file", zap.String("file", path), zap.Error(err))
		}
		return nil
	})
	return err
}

// processProject exports a single project document. "src" is the source path
// relative to the original input (just the base name when an explicit file
// was given); "dst" is the destination directory. On any failure no partial
// output file is left behind.
func processProject(ctx context.Context, client *http.Client, path, src, dst string, log *zap.Logger) (rerr error) {
	env := state.EnvFromContext(ctx)

	var outputName string

	log.Info("Export starting", zap.String("from", src))
	defer func(start time.Time) {
		// graphic processing may panic on exotic inputs; when multiple
		// projects are being processed we do not want to stop
		if r := recover(); r != nil {
			log.Error("Export ended with panic",
				zap.Any("panic", r), zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName), zap.ByteString("stack", debug.Stack()))
			rerr = fmt.Errorf("export panic: %v", r)
		} else {
			log.Info("Export completed", zap.Duration("elapsed", time.Since(start)), zap.String("to", outputName))
		}
	}(time.Now())

	// relative source path is unique within a run, unlike the base name
	refID := strings.ReplaceAll(src, string(filepath.Separator), "_")

	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("unable to read project (%s): %w", src, err)
	}
	env.Rpt.StoreData("source-"+refID, data)

	p, err := project.Parse(data, log)
	if err != nil {
		return fmt.Errorf("unable to parse project (%s): %w", src, err)
	}

	inlined, err := assets.EmbedProjectMedia(ctx, client, p, assets.Options{
		MaxDimension: env.Cfg.Document.Images.MaxDimension,
		JPEGQuality:  env.Cfg.Document.Images.JPEGQuality,
		Optimize:     env.Cfg.Document.Images.Optimize,
	}, log)
	if err != nil {
		return fmt.Errorf("unable to inline media: %w", err)
	}

	fontCSS := assets.EmbedWebFonts(ctx, client, env.Cfg.Document.Fonts.StylesheetURL, log)
	if fontCSS != "" {
		env.Rpt.StoreData("fonts-"+refID+".css", []byte(fontCSS))
	}

	html, err := compile.Compile(inlined, fontCSS, log)
	if err != nil {
		return fmt.Errorf("unable to compile document: %w", err)
	}

	outputName = buildOutputPath(p, src, dst, env)

	if _, err := os.Stat(outputName); err == nil {
		if !env.Overwrite {
			return fmt.Errorf("output file already exists: %s", outputName)
		}
		log.Warn("Overwriting existing file", zap.String("file", outputName))
		if err = os.Remove(outputName); err != nil {
			return err
		}
	} else if !os.IsNotExist(err) {
		return err
	} else if err := os.MkdirAll(filepath.Dir(outputName), 0755); err != nil {
		return fmt.Errorf("unable to create output directory: %w", err)
	}

	if err := writeFileAtomic(outputName, []byte(html)); err != nil {
		return fmt.Errorf("unable to write output: %w", err)
	}

	if env.Cfg.Document.ExportProjectJSON {
		jsonName := strings.TrimSuffix(outputName, outputExt) + ".json"
		doc, err := inlined.Export()
		if err != nil {
			log.Warn("Unable to serialize project document", zap.Error(err))
		} else if err := writeFileAtomic(jsonName, doc); err != nil {
			log.Warn("Unable to write project document", zap.String("file", jsonName), zap.Error(err))
		}
	}

	env.Rpt.Store("result-"+refID+outputExt, outputName)
	return nil
}

// writeFileAtomic writes data to a temporary file in the target directory
// and renames it into place, so a failed export never leaves partial output.
func writeFileAtomic(name string, data []byte) error {
	f, err := os.CreateTemp(filepath.Dir(name), "."+filepath.Base(name)+".*")
	if err != nil {
		return err
	}
	tmp := f.Name()

	if _, err := f.Write(data); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Sync(); err != nil {
		f.Close()
		os.Remove(tmp)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Chmod(tmp, 0644); err != nil {
		os.Remove(tmp)
		return err
	}
	if err := os.Rename(tmp, name); err != nil {
		os.Remove(tmp)
		return err
	}
	return nil
}
