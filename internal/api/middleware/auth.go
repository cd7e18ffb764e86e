package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/Wu-ChengLiang/TMC-BookingService/internal/api/handlers"
	"github.com/Wu-ChengLiang/TMC-BookingService/internal/domain"
)

type ctxKey string

const (
	customerIDKey ctxKey = "customerID"
	actorRoleKey  ctxKey = "actorRole"
	requestIDKey  ctxKey = "requestID"
)

const (
	// HeaderCustomerID идентификатор клиента, проставляется API-шлюзом
	HeaderCustomerID = "X-Customer-ID"
	// HeaderActorRole роль инициатора запроса: customer | staff | admin
	HeaderActorRole = "X-Actor-Role"
	// HeaderRequestID корреляционный идентификатор запроса
	HeaderRequestID = "X-Request-ID"
)

const msgMissingCustomerID = "отсутствует идентификатор клиента"

// walkInPrefix помечает идентификаторы, сгенерированные для клиентов без учетной записи
const walkInPrefix = "walk-in-"

// Auth проверяет наличие идентификатора клиента и кладет
// идентификатор, роль и request-id в контекст запроса.
// Аутентификацию выполняет API-шлюз, сервис доверяет заголовкам.
// Персонал может оформлять записи без идентификатора клиента:
// для таких запросов генерируется walk-in идентификатор.
func Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		role := parseActorRole(r.Header.Get(HeaderActorRole))

		customerID := strings.TrimSpace(r.Header.Get(HeaderCustomerID))
		if customerID == "" {
			if role == domain.RoleCustomer {
				handlers.RespondUnauthorized(w, msgMissingCustomerID)
				return
			}
			customerID = walkInPrefix + uuid.NewString()
		}

		requestID := strings.TrimSpace(r.Header.Get(HeaderRequestID))
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(HeaderRequestID, requestID)

		ctx := r.Context()
		ctx = context.WithValue(ctx, customerIDKey, customerID)
		ctx = context.WithValue(ctx, actorRoleKey, role)
		ctx = context.WithValue(ctx, requestIDKey, requestID)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// parseActorRole неизвестные и пустые значения трактуются как customer
func parseActorRole(raw string) domain.ActorRole {
	switch domain.ActorRole(strings.ToLower(strings.TrimSpace(raw))) {
	case domain.RoleStaff:
		return domain.RoleStaff
	case domain.RoleAdmin:
		return domain.RoleAdmin
	default:
		return domain.RoleCustomer
	}
}

// GetCustomerID возвращает идентификатор клиента из контекста
func GetCustomerID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(customerIDKey).(string)
	return id, ok
}

// GetActorRole возвращает роль инициатора запроса из контекста
func GetActorRole(ctx context.Context) domain.ActorRole {
	if role, ok := ctx.Value(actorRoleKey).(domain.ActorRole); ok {
		return role
	}
	return domain.RoleCustomer
}

// GetRequestID возвращает корреляционный идентификатор запроса
func GetRequestID(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(requestIDKey).(string)
	return id, ok
}
