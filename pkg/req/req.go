package req

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
)

// maxBodySize ограничение на размер тела запроса
const maxBodySize = 1 << 20

var ErrEmptyBody = errors.New("empty request body")

// Decode читает JSON из тела запроса в T
func Decode[T any](body io.Reader) (T, error) {
	var payload T

	dec := json.NewDecoder(io.LimitReader(body, maxBodySize))

	err := dec.Decode(&payload)
	if err != nil {
		if errors.Is(err, io.EOF) {
			return payload, ErrEmptyBody
		}
		return payload, fmt.Errorf("decode request: %w", err)
	}

	return payload, nil
}

// QueryInt целое из query параметра. Пустое или некорректное значение даёт def
func QueryInt(r *http.Request, key string, def int) int {
	v, err := strconv.Atoi(r.URL.Query().Get(key))
	if err != nil {
		return def
	}
	return v
}
