package commands

import (
	"context"
	"fmt"
	"log/slog"

	"innkeeper/internal/domain/room"
	"innkeeper/internal/infra"
	"innkeeper/internal/pkg/errs"
	"innkeeper/internal/usecase/shared"

	"github.com/google/uuid"
)

type CreateRoomParams struct {
	Number            int
	Category          string
	BedType           string
	View              string
	RateCents         int64
	Capacity          int
	Amenities         []string
	PubliclyVisible   bool
	PublicDescription string
	Images            [][]byte
}

type UpdateRoomParams struct {
	Category          *string
	BedType           *string
	View              *string
	RateCents         *int64
	Capacity          *int
	Amenities         []string
	PubliclyVisible   *bool
	PublicDescription *string
	RemoveImageURLs   []string
	NewImages         [][]byte
}

type RoomCommands interface {
	CreateRoom(ctx context.Context, params CreateRoomParams, createdBy uuid.UUID) (*room.Room, error)
	UpdateRoom(ctx context.Context, id uuid.UUID, params UpdateRoomParams) (*room.Room, error)
	DeleteRoom(ctx context.Context, id uuid.UUID) error
	SetMaintenance(ctx context.Context, id uuid.UUID) (*room.Room, error)
	ClearMaintenance(ctx context.Context, id uuid.UUID) (*room.Room, error)
}

type roomCommandsImpl struct {
	uow    shared.UnitOfWork
	images ImageStore
	logger *slog.Logger
}

func NewRoomCommands(uow shared.UnitOfWork, images ImageStore, logger *slog.Logger) RoomCommands {
	return &roomCommandsImpl{uow: uow, images: images, logger: logger}
}

func (u *roomCommandsImpl) CreateRoom(ctx context.Context, params CreateRoomParams, _ uuid.UUID) (*room.Room, error) {
	rm, err := room.NewRoom(
		params.Number,
		params.Category,
		params.BedType,
		params.View,
		params.RateCents,
		params.Capacity,
		params.Amenities,
		params.PubliclyVisible,
		params.PublicDescription,
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	urls := make([]string, 0, len(params.Images))
	for i, img := range params.Images {
		url, err := u.images.Upload(ctx, img, fmt.Sprintf("room-%d-%d", params.Number, i))
		if err != nil {
			return nil, errs.Wrap(err, "image upload failed")
		}
		urls = append(urls, url)
	}
	rm.SetImages(urls)

	err = u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		if _, err := tx.Rooms().Create(ctx, rm); err != nil {
			if infra.IsKind(err, infra.KindDuplicateKey) {
				return errs.ErrDuplicateRoomNumber
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return rm, nil
}

func (u *roomCommandsImpl) UpdateRoom(ctx context.Context, id uuid.UUID, params UpdateRoomParams) (*room.Room, error) {
	var updated *room.Room
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := findRoom(ctx, tx, id)
		if err != nil {
			return err
		}

		images := rm.Images()
		for _, url := range params.RemoveImageURLs {
			// Image-store failures never block the metadata update.
			if err := u.images.Delete(ctx, url); err != nil {
				u.logger.Warn("room image delete failed", "url", url, "error", err)
			}
			images = removeURL(images, url)
		}
		for i, img := range params.NewImages {
			url, err := u.images.Upload(ctx, img, fmt.Sprintf("room-%d-%d", rm.Number(), len(images)+i))
			if err != nil {
				return errs.Wrap(err, "image upload failed")
			}
			images = append(images, url)
		}

		next, err := room.NewRoom(
			rm.Number(),
			valueOr(params.Category, rm.Category()),
			valueOr(params.BedType, rm.BedType()),
			valueOr(params.View, rm.View()),
			valueOr(params.RateCents, rm.RateCents()),
			valueOr(params.Capacity, rm.Capacity()),
			amenitiesOr(params.Amenities, rm.Amenities()),
			valueOr(params.PubliclyVisible, rm.PubliclyVisible()),
			valueOr(params.PublicDescription, rm.PublicDescription()),
		)
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		updated = room.Reconstruct(
			rm.ID(), rm.Number(),
			next.Category(), next.BedType(), next.View(),
			next.RateCents(), next.Capacity(),
			rm.Status(),
			next.Amenities(), next.PubliclyVisible(), next.PublicDescription(),
			images,
			rm.CreatedAt(), rm.UpdatedAt(),
		)
		if err := tx.Rooms().Update(ctx, updated); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// DeleteRoom removes the registry entry after cleaning up stored images.
// Image cleanup failures are logged and tolerated; metadata deletion
// proceeds regardless.
func (u *roomCommandsImpl) DeleteRoom(ctx context.Context, id uuid.UUID) error {
	return u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := findRoom(ctx, tx, id)
		if err != nil {
			return err
		}

		active, err := tx.Reads().HasActiveBooking(ctx, rm.ID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if active {
			return errs.ErrRoomHasBookings
		}

		for _, url := range rm.Images() {
			if err := u.images.Delete(ctx, url); err != nil {
				u.logger.Warn("room image delete failed, continuing", "url", url, "error", err)
			}
		}

		if err := tx.Rooms().Delete(ctx, rm.ID()); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		return nil
	})
}

func (u *roomCommandsImpl) SetMaintenance(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	var updated *room.Room
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := findRoom(ctx, tx, id)
		if err != nil {
			return err
		}

		active, err := tx.Reads().HasActiveBooking(ctx, rm.ID())
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if active {
			return errs.ErrRoomHasBookings
		}

		if err := rm.EnterMaintenance(); err != nil {
			return errs.Mark(err, errs.ErrRoomNotAvailable)
		}
		if err := tx.Rooms().Update(ctx, rm); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		updated = rm
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (u *roomCommandsImpl) ClearMaintenance(ctx context.Context, id uuid.UUID) (*room.Room, error) {
	var updated *room.Room
	err := u.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		rm, err := findRoom(ctx, tx, id)
		if err != nil {
			return err
		}
		if err := rm.LeaveMaintenance(); err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}
		if err := tx.Rooms().Update(ctx, rm); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		updated = rm
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func findRoom(ctx context.Context, tx shared.Tx, id uuid.UUID) (*room.Room, error) {
	rm, err := tx.Reads().RoomByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrRoomNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return rm, nil
}

func valueOr[T any](p *T, fallback T) T {
	if p != nil {
		return *p
	}
	return fallback
}

func amenitiesOr(next, current []string) []string {
	if next != nil {
		return next
	}
	return current
}

func removeURL(urls []string, target string) []string {
	out := urls[:0]
	for _, u := range urls {
		if u != target {
			out = append(out, u)
		}
	}
	return out
}
