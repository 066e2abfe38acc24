package repo

import (
	"context"
	"database/sql"
	"errors"

	"github.com/SergeyBogomolovv/booking-service/internal/entities"

	sq "github.com/Masterminds/squirrel"
)

func (r *postgresRepo) GetCustomer(ctx context.Context, id string) (entities.Customer, error) {
	query, args := r.qb.Select("id", "name", "email", "status").
		From("users").
		Where(sq.Eq{"id": id, "role": string(entities.RoleCustomer)}).
		MustSql()

	var customer Customer
	err := r.getContext(ctx, &customer, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Customer{}, entities.ErrCustomerNotFound
	}
	if err != nil {
		return entities.Customer{}, entities.External("failed to get customer", err)
	}
	return CustomerToEntity(customer), nil
}

func (r *postgresRepo) GetVendor(ctx context.Context, id string) (entities.Vendor, error) {
	query, args := r.vendorQuery(id).MustSql()

	var vendor Vendor
	err := r.getContext(ctx, &vendor, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Vendor{}, entities.ErrVendorNotFound
	}
	if err != nil {
		return entities.Vendor{}, entities.External("failed to get vendor", err)
	}
	return VendorToEntity(vendor), nil
}

// LockVendor takes a row lock on the vendor until the surrounding transaction
// ends. Bookings against one vendor are serialised by it.
func (r *postgresRepo) LockVendor(ctx context.Context, id string) error {
	query, args := r.qb.Select("user_id").
		From("vendors").
		Where(sq.Eq{"user_id": id}).
		Suffix("FOR UPDATE").
		MustSql()

	var locked string
	err := r.getContext(ctx, &locked, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.ErrVendorNotFound
	}
	if err != nil {
		return entities.External("failed to lock vendor", err)
	}
	return nil
}

func (r *postgresRepo) vendorQuery(id string) sq.SelectBuilder {
	return r.qb.Select(
		"u.id", "u.name", "u.email", "u.status",
		"v.open_time", "v.close_time", "v.available_days", "v.timezone", "v.lng", "v.lat",
	).
		From("vendors v").
		Join("users u ON u.id = v.user_id").
		Where(sq.Eq{"v.user_id": id})
}

func (r *postgresRepo) GetPackage(ctx context.Context, id string) (entities.Package, error) {
	query, args := r.qb.Select(
		"id", "vendor_id", "service_id", "price", "has_setup", "setup_duration", "setup_fee",
	).
		From("packages").
		Where(sq.Eq{"id": id}).
		MustSql()

	var pkg Package
	err := r.getContext(ctx, &pkg, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return entities.Package{}, entities.ErrPackageNotFound
	}
	if err != nil {
		return entities.Package{}, entities.External("failed to get package", err)
	}
	return PackageToEntity(pkg), nil
}

// GetUserEmail returns the email of any user regardless of role.
func (r *postgresRepo) GetUserEmail(ctx context.Context, id string) (string, error) {
	query, args := r.qb.Select("email").
		From("users").
		Where(sq.Eq{"id": id}).
		MustSql()

	var email string
	err := r.getContext(ctx, &email, query, args...)
	if errors.Is(err, sql.ErrNoRows) {
		return "", entities.NotFound("user %s not found", id)
	}
	if err != nil {
		return "", entities.External("failed to get user email", err)
	}
	return email, nil
}
