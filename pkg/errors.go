// Package pkg, projede paylaşılan utility'leri barındırır.
// Bu dosya domain-level error tanımlarını içerir.
//
// Go'da error'lar basit değerlerdir. errors.New() ile sabit error
// değişkenleri tanımlarız; karşılaştırma string yerine referans ile yapılır:
//
//	if errors.Is(err, pkg.ErrNotFound) { ... }
package pkg

import "errors"

// Domain-level error'lar.
// Service katmanı bunları döner (gerekirse %w ile wrap ederek),
// handler katmanı pkg.Error ile HTTP status code'larına map'ler.
var (
	ErrNotFound     = errors.New("not found")
	ErrUnauthorized = errors.New("unauthorized")
	ErrBadRequest   = errors.New("bad request")
	ErrRateLimited  = errors.New("rate limited")
	ErrInternal     = errors.New("internal error")

	// İçerik katmanı
	ErrInvalidType      = errors.New("invalid content type")
	ErrInvalidStructure = errors.New("invalid content structure")
	ErrReadFailure      = errors.New("content read failure")
	ErrWriteFailure     = errors.New("content write failure")

	// Upload katmanı
	ErrNoFileProvided  = errors.New("no file provided")
	ErrUnsupportedFile = errors.New("unsupported file")
	ErrTranscodeFailed = errors.New("transcode failed")
)
