package render

import (
	"context"
	"fmt"
	"io"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"golang.org/x/sync/errgroup"

	"github.com/agbru/rtcore/internal/color"
	"github.com/agbru/rtcore/internal/vec"
)

const tracerName = "github.com/agbru/rtcore/internal/render"

// Fill renders every pixel of img with sampler, encoding colors with gamma.
//
// Up to workers rows are rendered concurrently (at least one). Each completed
// row advances reporter by one. Fill stops scheduling rows once ctx is done
// and returns the context error; rows already rendered are left in place.
func Fill[T vec.Float](ctx context.Context, img *Image, sampler Sampler[T], gamma T, workers int, reporter Reporter) error {
	if reporter == nil {
		reporter = Nop{}
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, "render.Fill")
	defer span.End()
	span.SetAttributes(
		attribute.Int("render.width", img.Width),
		attribute.Int("render.height", img.Height),
		attribute.Int("render.workers", workers),
	)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(workers, 1))

	scheduled := 0
	for ; scheduled < img.Height; scheduled++ {
		if gctx.Err() != nil {
			break
		}
		row := scheduled
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			fillRow(img.Row(row), row, img.Width, sampler, gamma)
			reporter.Advance(1)
			return nil
		})
	}

	err := g.Wait()
	if err == nil && scheduled < img.Height {
		err = ctx.Err()
	}
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
	}
	return err
}

func fillRow[T vec.Float](dst []uint8, j, width int, sampler Sampler[T], gamma T) {
	for i := 0; i < width; i++ {
		color.Put(dst[i*Channels:], sampler(i, j), gamma)
	}
}

// WriteText streams a width x height image to w as a plain-text PPM: the
// header, then one "r g b" line per pixel in row-major order. Each completed
// row advances reporter by one. Writes are not buffered here.
func WriteText[T vec.Float](ctx context.Context, w io.Writer, width, height int, sampler Sampler[T], gamma T, reporter Reporter) error {
	if reporter == nil {
		reporter = Nop{}
	}
	ctx, span := otel.Tracer(tracerName).Start(ctx, "render.WriteText")
	defer span.End()
	span.SetAttributes(
		attribute.Int("render.width", width),
		attribute.Int("render.height", height),
	)

	fail := func(err error) error {
		span.RecordError(err)
		span.SetStatus(codes.Error, err.Error())
		return err
	}

	if err := color.WritePPMHeader(w, width, height); err != nil {
		return fail(fmt.Errorf("write header: %w", err))
	}
	for j := 0; j < height; j++ {
		if err := ctx.Err(); err != nil {
			return fail(err)
		}
		for i := 0; i < width; i++ {
			if err := color.WriteText(w, sampler(i, j), gamma); err != nil {
				return fail(fmt.Errorf("write pixel (%d, %d): %w", i, j, err))
			}
		}
		reporter.Advance(1)
	}
	return nil
}
