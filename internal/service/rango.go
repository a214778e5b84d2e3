package service

import (
	"errors"
	"time"

	"github.com/marina-vidal/gimnasio-go-api/internal/dto"
)

// ErrRangoInvalido indicates a range bound is not an ISO date.
var ErrRangoInvalido = errors.New("rango de fechas invalido")

// parseRango parses the inclusive [desde, hasta] bounds. An inverted range
// (desde after hasta) is not an error: callers return empty results for it.
func parseRango(desde, hasta string) (time.Time, time.Time, bool, error) {
	inicio, err := time.ParseInLocation(dto.FechaLayout, desde, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, false, ErrRangoInvalido
	}

	fin, err := time.ParseInLocation(dto.FechaLayout, hasta, time.UTC)
	if err != nil {
		return time.Time{}, time.Time{}, false, ErrRangoInvalido
	}

	return inicio, fin, inicio.After(fin), nil
}
