package driven

import (
	"context"

	"github.com/holocron-labs/holocron-cli/internal/core/domain"
)

// CatalogAPI is the remote catalog service. The contract is fixed:
// list endpoints return summary records plus a page count, detail
// endpoints return the full property set for one uid, and any
// authenticated call may answer 401 to signal token invalidation.
type CatalogAPI interface {
	// ListPage fetches one page of summary records for a category.
	// A non-empty name is applied as a server-side filter.
	ListPage(
		ctx context.Context, token string, category domain.Category,
		page, limit int, name string,
	) (*domain.PageResult, error)

	// GetDetail fetches the full record for one uid.
	GetDetail(
		ctx context.Context, token string, category domain.Category, uid string,
	) (*domain.CatalogRecord, error)

	// SignIn exchanges credentials for a session.
	// A rejected signin returns the server's message as the error text.
	SignIn(ctx context.Context, username, password string) (*domain.Session, error)

	// SignUp registers an account and returns the server's message.
	SignUp(ctx context.Context, username, password string) (string, error)
}
