package flash

import (
	"net/http"

	"alora/shared/base64"

	"github.com/rs/zerolog/log"
)

const (
	cookieName = "alora_flash"
	cookiePath = "/"
	maxAge     = 60

	LevelSuccess = "success"
	LevelError   = "error"
	LevelInfo    = "info"
)

// Message is a one-shot notice carried across a redirect.
type Message struct {
	Level string `json:"level"`
	Text  string `json:"text"`
}

func Success(text string) Message {
	return Message{Level: LevelSuccess, Text: text}
}

func Error(text string) Message {
	return Message{Level: LevelError, Text: text}
}

// Set stores the message in a short lived cookie.
func Set(writer http.ResponseWriter, message Message) {
	value, err := base64.EncodeJSON(message)
	if err != nil {
		log.Error().Err(err).Msg("failed to encode flash message")

		return
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     cookieName,
		Value:    value,
		Path:     cookiePath,
		MaxAge:   maxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
}

// Pop reads the pending message, if any, and expires the cookie.
func Pop(writer http.ResponseWriter, request *http.Request) (*Message, bool) {
	cookie, err := request.Cookie(cookieName)
	if err != nil || cookie.Value == "" {
		return nil, false
	}

	http.SetCookie(writer, &http.Cookie{
		Name:     cookieName,
		Value:    "",
		Path:     cookiePath,
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	var message Message
	if err = base64.DecodeJSON(cookie.Value, &message); err != nil {
		log.Warn().Err(err).Msg("discarding malformed flash cookie")

		return nil, false
	}

	return &message, true
}
