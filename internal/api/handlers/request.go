package handlers

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gorilla/mux"
)

// OptionalQuery возвращает значение query параметра или nil, если он пустой
func OptionalQuery(r *http.Request, key string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil
	}
	return &v
}

// PathInt64 извлекает положительный int64 из переменной маршрута
func PathInt64(r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(mux.Vars(r)[key], 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}
