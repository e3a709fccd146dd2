package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func zapError(err error) zap.Field {
	return zap.Error(err)
}

func readPathInt64(r *http.Request, key string) (int64, error) {
	value := chi.URLParam(r, key)
	if value == "" {
		return 0, errMissingParam
	}
	return parseInt64(value)
}

func parseInt64(value string) (int64, error) {
	var out int64
	_, err := fmt.Sscan(value, &out)
	return out, err
}

var errMissingParam = errors.New("missing param")
