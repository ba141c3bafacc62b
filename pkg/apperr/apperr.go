// Package apperr defines the service's business-error taxonomy. Every error
// carries a stable machine-readable code, a human-readable message, and the
// HTTP status it maps to, so handlers can translate failures uniformly.
package apperr

import "net/http"

type Code string

const (
	CodeLoginOrPasswordIncorrect Code = "login_or_password_incorrect"
	CodeUserAlreadyExists        Code = "user_already_exists"
	CodeUserNotFound             Code = "user_not_found"
	CodeUnauthorized             Code = "unauthorized"
	CodeNotFound                 Code = "not_found"
	CodeConflict                 Code = "conflict"

	CodeWishNotFound            Code = "wish_not_found"
	CodeWishesNotFound          Code = "wishes_not_found"
	CodeConflictUpdateWishPrice Code = "conflict_update_wish_price"
	CodeTooMuchMoney            Code = "too_much_money"
	CodeInvalidAmount           Code = "invalid_amount"

	CodeWishlistNotFound Code = "wishlist_not_found"

	CodeOfferNotFound Code = "offer_not_found"
	CodeEmptyItemsID  Code = "empty_items_id"

	CodeConflictCreateOwnWishOffer Code = "conflict_create_own_wish_offer"

	CodeConflictUpdateOtherProfile  Code = "conflict_update_other_profile"
	CodeConflictDeleteOtherProfile  Code = "conflict_delete_other_profile"
	CodeConflictUpdateOtherWish     Code = "conflict_update_other_wish"
	CodeConflictDeleteOtherWish     Code = "conflict_delete_other_wish"
	CodeConflictUpdateOtherWishlist Code = "conflict_update_other_wishlist"
	CodeConflictDeleteOtherWishlist Code = "conflict_delete_other_wishlist"
)

// Error is a business-rule violation with a fixed HTTP mapping.
type Error struct {
	Code    Code
	Message string
	Status  int
}

func (e *Error) Error() string { return string(e.Code) + ": " + e.Message }

func newErr(code Code, status int, msg string) *Error {
	return &Error{Code: code, Message: msg, Status: status}
}

var (
	ErrLoginOrPasswordIncorrect = newErr(CodeLoginOrPasswordIncorrect, http.StatusBadRequest, "incorrect username or password")
	ErrUserAlreadyExists        = newErr(CodeUserAlreadyExists, http.StatusBadRequest, "user already exists")
	ErrUserNotFound             = newErr(CodeUserNotFound, http.StatusNotFound, "user not found")
	ErrUnauthorized             = newErr(CodeUnauthorized, http.StatusUnauthorized, "unauthorized")
	ErrNotFound                 = newErr(CodeNotFound, http.StatusNotFound, "not found")
	ErrConflict                 = newErr(CodeConflict, http.StatusConflict, "conflict")

	ErrWishNotFound            = newErr(CodeWishNotFound, http.StatusNotFound, "wish not found")
	ErrWishesNotFound          = newErr(CodeWishesNotFound, http.StatusNotFound, "wishes with the given ids not found")
	ErrConflictUpdateWishPrice = newErr(CodeConflictUpdateWishPrice, http.StatusBadRequest, "cannot change the price of a funded wish")
	ErrTooMuchMoney            = newErr(CodeTooMuchMoney, http.StatusConflict, "offer amount exceeds what is left to raise")
	ErrInvalidAmount           = newErr(CodeInvalidAmount, http.StatusBadRequest, "amount must be a positive value with at most two decimals")

	ErrWishlistNotFound = newErr(CodeWishlistNotFound, http.StatusNotFound, "wishlist not found")

	ErrOfferNotFound = newErr(CodeOfferNotFound, http.StatusNotFound, "offer not found")
	ErrEmptyItemsID  = newErr(CodeEmptyItemsID, http.StatusBadRequest, "itemsId is empty")

	ErrConflictCreateOwnWishOffer = newErr(CodeConflictCreateOwnWishOffer, http.StatusBadRequest, "cannot pledge money toward your own wish")

	ErrConflictUpdateOtherProfile  = newErr(CodeConflictUpdateOtherProfile, http.StatusBadRequest, "cannot edit another user's profile")
	ErrConflictDeleteOtherProfile  = newErr(CodeConflictDeleteOtherProfile, http.StatusBadRequest, "cannot delete another user's profile")
	ErrConflictUpdateOtherWish     = newErr(CodeConflictUpdateOtherWish, http.StatusBadRequest, "cannot edit another user's wish")
	ErrConflictDeleteOtherWish     = newErr(CodeConflictDeleteOtherWish, http.StatusBadRequest, "cannot delete another user's wish")
	ErrConflictUpdateOtherWishlist = newErr(CodeConflictUpdateOtherWishlist, http.StatusBadRequest, "cannot edit another user's wishlist")
	ErrConflictDeleteOtherWishlist = newErr(CodeConflictDeleteOtherWishlist, http.StatusBadRequest, "cannot delete another user's wishlist")
)
