package middleware

import (
	"context"
	"net/http"
	"regexp"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-IntakeService/internal/api/handlers"
)

// ProfileHeader заголовок с идентификатором профиля клиента
const ProfileHeader = "X-Profile-ID"

const msgInvalidProfileID = "Ongeldige profiel-ID."

type contextKey string

const profileIDKey contextKey = "profileID"

var profilePattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// Profile определяет профиль клиента по заголовку X-Profile-ID.
// Без заголовка создается новый профиль; его ID возвращается в том же заголовке ответа.
func Profile(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		profileID := r.Header.Get(ProfileHeader)
		if profileID == "" {
			profileID = uuid.NewString()
		} else if !profilePattern.MatchString(profileID) {
			handlers.RespondBadRequest(w, msgInvalidProfileID)
			return
		}

		w.Header().Set(ProfileHeader, profileID)
		next.ServeHTTP(w, r.WithContext(WithProfileID(r.Context(), profileID)))
	})
}

// WithProfileID кладет ID профиля в контекст
func WithProfileID(ctx context.Context, profileID string) context.Context {
	return context.WithValue(ctx, profileIDKey, profileID)
}

// GetProfileID извлекает ID профиля из контекста
func GetProfileID(ctx context.Context) (string, bool) {
	profileID, ok := ctx.Value(profileIDKey).(string)
	return profileID, ok && profileID != ""
}
