package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"signalhtml/internal/domain"
)

// ErrNoRecipientName aborts the run: a conversation page cannot be written
// for a counterpart we cannot name.
var ErrNoRecipientName = errors.New("no resolvable name for recipient")

// Resolver builds Recipients from their database rows.
type Resolver struct {
	store  domain.BackupStore
	logger *slog.Logger
}

func NewResolver(store domain.BackupStore, logger *slog.Logger) *Resolver {
	return &Resolver{store: store, logger: logger}
}

// Resolve looks up a recipient and determines its display name and color.
// Groups take their name from the groups table, people from the address
// book entry and then the profile. Recipients without a stored color get a
// deterministic one derived from their id, so re-running the export colors
// everyone the same way.
func (r *Resolver) Resolve(ctx context.Context, id domain.RecipientID) (domain.Recipient, error) {
	row, err := r.store.Recipient(ctx, id)
	if err != nil {
		return domain.Recipient{}, err
	}

	name := row.SystemName.String
	isGroup := row.GroupID.Valid
	if isGroup {
		title, err := r.store.GroupTitle(ctx, row.GroupID.String)
		if err != nil {
			return domain.Recipient{}, err
		}
		// The title replaces the name even when absent: a group is never
		// named after an address book entry.
		name = title.String
	}
	if name == "" {
		name = row.JoinedName.String
	}
	if name == "" {
		return domain.Recipient{}, fmt.Errorf("%w id %s", ErrNoRecipientName, id)
	}

	color := row.Color.String
	if color == "" {
		color = domain.AssignColor(id.String())
		r.logger.Debug("assigned color", "recipient", id, "color", color)
	}

	return domain.Recipient{ID: id, Name: name, Color: color, IsGroup: isGroup}, nil
}
