package usecases

import (
	"context"

	"github.com/phonefix-inc/phonefix/internal/application/address/dto"
	"github.com/phonefix-inc/phonefix/internal/domain/address"
	sharedvo "github.com/phonefix-inc/phonefix/internal/domain/shared/valueobjects"
	"github.com/phonefix-inc/phonefix/internal/shared/actor"
	"github.com/phonefix-inc/phonefix/internal/shared/db"
	apperrors "github.com/phonefix-inc/phonefix/internal/shared/errors"
	"github.com/phonefix-inc/phonefix/internal/shared/logger"
	"github.com/phonefix-inc/phonefix/internal/shared/mapper"
)

type CreateAddressCommand struct {
	Actor     actor.Actor
	Type      string
	Address   sharedvo.PostalAddress
	IsDefault bool
}

// UpdateAddressCommand replaces the postal fields. An empty Type keeps the
// current one; IsDefault=false never clears an existing default.
type UpdateAddressCommand struct {
	AddressID uint
	Actor     actor.Actor
	Type      string
	Address   sharedvo.PostalAddress
	IsDefault bool
}

// AddressManager keeps exactly one default per (user, type) whenever the
// user has any address of that type. Every mutation that touches defaults
// runs in a transaction holding row locks on the affected type.
type AddressManager struct {
	addrRepo       address.Repository
	txMgr          db.Transactor
	defaultCountry string
	logger         logger.Interface
}

func NewAddressManager(addrRepo address.Repository, txMgr db.Transactor, defaultCountry string, logger logger.Interface) *AddressManager {
	return &AddressManager{
		addrRepo:       addrRepo,
		txMgr:          txMgr,
		defaultCountry: defaultCountry,
		logger:         logger,
	}
}

func (m *AddressManager) List(ctx context.Context, a actor.Actor) ([]*dto.AddressDTO, error) {
	if !a.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}

	addrs, err := m.addrRepo.ListByUser(ctx, a.UserID)
	if err != nil {
		m.logger.Errorw("failed to list addresses", "user_id", a.UserID, "error", err)
		return nil, err
	}
	result := mapper.MapSlice(addrs, dto.ToAddressDTO)
	if result == nil {
		result = []*dto.AddressDTO{}
	}
	return result, nil
}

func (m *AddressManager) Create(ctx context.Context, cmd CreateAddressCommand) (*dto.AddressDTO, error) {
	if !cmd.Actor.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}
	addrType, err := address.ParseType(cmd.Type)
	if err != nil {
		return nil, apperrors.NewFieldValidationError("type", "type must be SHIPPING or BILLING")
	}

	addr, err := address.NewAddress(cmd.Actor.UserID, addrType, cmd.Address.Normalize(m.defaultCountry))
	if err != nil {
		return nil, err
	}

	err = m.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		existing, err := m.addrRepo.LockByUserAndType(txCtx, addr.UserID(), addrType)
		if err != nil {
			return err
		}
		if len(existing) == 0 || cmd.IsDefault {
			if err := m.addrRepo.ClearDefaults(txCtx, addr.UserID(), addrType); err != nil {
				return err
			}
			addr.MarkDefault()
		}
		return m.addrRepo.Create(txCtx, addr)
	})
	if err != nil {
		m.logger.Errorw("failed to create address", "user_id", cmd.Actor.UserID, "error", err)
		return nil, err
	}

	m.logger.Infow("address created", "address_id", addr.ID(), "user_id", addr.UserID(), "type", addrType, "is_default", addr.IsDefault())
	return dto.ToAddressDTO(addr), nil
}

func (m *AddressManager) Update(ctx context.Context, cmd UpdateAddressCommand) (*dto.AddressDTO, error) {
	addr, err := m.owned(ctx, cmd.AddressID, cmd.Actor)
	if err != nil {
		return nil, err
	}

	var requested address.Type
	if cmd.Type != "" {
		if requested, err = address.ParseType(cmd.Type); err != nil {
			return nil, apperrors.NewFieldValidationError("type", "type must be SHIPPING or BILLING")
		}
	}

	var updated *address.Address
	err = m.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		current, siblings, err := m.lockOwned(txCtx, addr.UserID(), addr.ID(), addr.Type())
		if err != nil {
			return err
		}
		oldType := current.Type()
		wasDefault := current.IsDefault()

		newType := requested
		if newType == "" {
			newType = oldType
		}
		if newType != oldType {
			if siblings, err = m.addrRepo.LockByUserAndType(txCtx, current.UserID(), newType); err != nil {
				return err
			}
		}

		if err := current.Edit(newType, cmd.Address.Normalize(m.defaultCountry)); err != nil {
			return err
		}

		if newType != oldType && wasDefault {
			current.ClearDefault()
			if err := m.promoteNewest(txCtx, current.UserID(), oldType, current.ID()); err != nil {
				return err
			}
		}

		if cmd.IsDefault || len(without(siblings, current.ID())) == 0 {
			if err := m.addrRepo.ClearDefaults(txCtx, current.UserID(), newType); err != nil {
				return err
			}
			current.MarkDefault()
		}
		if err := m.addrRepo.Update(txCtx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		m.logger.Warnw("failed to update address", "address_id", cmd.AddressID, "error", err)
		return nil, err
	}

	m.logger.Infow("address updated", "address_id", updated.ID(), "type", updated.Type(), "is_default", updated.IsDefault())
	return dto.ToAddressDTO(updated), nil
}

func (m *AddressManager) SetDefault(ctx context.Context, id uint, a actor.Actor) (*dto.AddressDTO, error) {
	addr, err := m.owned(ctx, id, a)
	if err != nil {
		return nil, err
	}

	var updated *address.Address
	err = m.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		current, _, err := m.lockOwned(txCtx, addr.UserID(), addr.ID(), addr.Type())
		if err != nil {
			return err
		}
		if err := m.addrRepo.ClearDefaults(txCtx, current.UserID(), current.Type()); err != nil {
			return err
		}
		current.MarkDefault()
		if err := m.addrRepo.Update(txCtx, current); err != nil {
			return err
		}
		updated = current
		return nil
	})
	if err != nil {
		m.logger.Errorw("failed to set default address", "address_id", id, "error", err)
		return nil, err
	}

	m.logger.Infow("default address changed", "address_id", updated.ID(), "user_id", updated.UserID(), "type", updated.Type())
	return dto.ToAddressDTO(updated), nil
}

// Delete removes the address. When it was the default, the most recently
// created remaining address of the same type takes over.
func (m *AddressManager) Delete(ctx context.Context, id uint, a actor.Actor) error {
	addr, err := m.owned(ctx, id, a)
	if err != nil {
		return err
	}

	err = m.txMgr.RunInTransaction(ctx, func(txCtx context.Context) error {
		current, _, err := m.lockOwned(txCtx, addr.UserID(), addr.ID(), addr.Type())
		if err != nil {
			return err
		}
		if err := m.addrRepo.Delete(txCtx, current.ID()); err != nil {
			return err
		}
		if !current.IsDefault() {
			return nil
		}
		return m.promoteNewest(txCtx, current.UserID(), current.Type(), current.ID())
	})
	if err != nil {
		m.logger.Errorw("failed to delete address", "address_id", id, "error", err)
		return err
	}

	m.logger.Infow("address deleted", "address_id", id, "user_id", addr.UserID())
	return nil
}

// lockOwned locks the user's addresses of addrType and returns the locked row
// for id along with the whole locked set. Default flags are only trusted from
// this row. If the type changed since the unlocked read, the row's current
// type is locked instead.
func (m *AddressManager) lockOwned(txCtx context.Context, userID string, id uint, addrType address.Type) (*address.Address, []*address.Address, error) {
	locked, err := m.addrRepo.LockByUserAndType(txCtx, userID, addrType)
	if err != nil {
		return nil, nil, err
	}
	if current := find(locked, id); current != nil {
		return current, locked, nil
	}

	latest, err := m.addrRepo.GetByID(txCtx, id)
	if err != nil {
		return nil, nil, err
	}
	if !latest.IsOwnedBy(userID) || latest.Type() == addrType {
		return nil, nil, address.ErrAddressNotFound
	}
	if locked, err = m.addrRepo.LockByUserAndType(txCtx, userID, latest.Type()); err != nil {
		return nil, nil, err
	}
	if current := find(locked, id); current != nil {
		return current, locked, nil
	}
	return nil, nil, address.ErrAddressNotFound
}

func (m *AddressManager) owned(ctx context.Context, id uint, a actor.Actor) (*address.Address, error) {
	if !a.IsAuthenticated() {
		return nil, apperrors.NewUnauthorizedError("authentication required")
	}
	addr, err := m.addrRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !addr.IsOwnedBy(a.UserID) {
		m.logger.Warnw("address access denied", "address_id", id, "user_id", a.UserID)
		return nil, address.ErrAddressNotFound
	}
	return addr, nil
}

func (m *AddressManager) promoteNewest(ctx context.Context, userID string, addrType address.Type, excludeID uint) error {
	rest, err := m.addrRepo.LockByUserAndType(ctx, userID, addrType)
	if err != nil {
		return err
	}

	var newest *address.Address
	for _, r := range without(rest, excludeID) {
		if newest == nil || r.CreatedAt().After(newest.CreatedAt()) ||
			(r.CreatedAt().Equal(newest.CreatedAt()) && r.ID() > newest.ID()) {
			newest = r
		}
	}
	if newest == nil {
		return nil
	}

	m.logger.Infow("promoting address to default", "address_id", newest.ID(), "user_id", userID, "type", addrType)
	if err := m.addrRepo.ClearDefaults(ctx, userID, addrType); err != nil {
		return err
	}
	newest.MarkDefault()
	return m.addrRepo.Update(ctx, newest)
}

func without(addrs []*address.Address, id uint) []*address.Address {
	out := make([]*address.Address, 0, len(addrs))
	for _, a := range addrs {
		if a.ID() != id {
			out = append(out, a)
		}
	}
	return out
}

func find(addrs []*address.Address, id uint) *address.Address {
	for _, a := range addrs {
		if a.ID() == id {
			return a
		}
	}
	return nil
}
