package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/wishdrop/wishdrop-backend/internal/domain/entity"
)

// hiddenAmount replaces the amount of a hidden offer for everyone except
// the pledger and the wish owner. The pledger's identity stays visible.
const hiddenAmount = "***"

// userView is the owner's own profile; publicUserView is what everyone
// else sees. Password never leaves the entity layer, email only to its owner.
func userView(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"about":      u.About,
		"avatar":     u.Avatar,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

func publicUserView(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"about":      u.About,
		"avatar":     u.Avatar,
		"created_at": u.CreatedAt,
	}
}

// wishOwnerID is the id of the wish the offer targets when the caller knows
// it, empty otherwise. The wish owner's view is never redacted.
func offerView(o *entity.Offer, viewerID, wishOwnerID string) gin.H {
	var amount any = o.Amount
	if o.Hidden && viewerID != o.UserID && (wishOwnerID == "" || viewerID != wishOwnerID) {
		amount = hiddenAmount
	}
	v := gin.H{
		"id":         o.ID,
		"item":       o.ItemID,
		"amount":     amount,
		"hidden":     o.Hidden,
		"created_at": o.CreatedAt,
		"updated_at": o.UpdatedAt,
	}
	if o.User != nil {
		v["user"] = publicUserView(o.User)
	} else {
		v["user"] = o.UserID
	}
	return v
}

func offerViews(offers []entity.Offer, viewerID, wishOwnerID string) []gin.H {
	out := make([]gin.H, 0, len(offers))
	for i := range offers {
		out = append(out, offerView(&offers[i], viewerID, wishOwnerID))
	}
	return out
}

func wishView(w *entity.Wish, viewerID string) gin.H {
	v := gin.H{
		"id":          w.ID,
		"name":        w.Name,
		"link":        w.Link,
		"image":       w.Image,
		"price":       w.Price,
		"raised":      w.Raised,
		"description": w.Description,
		"copied":      w.Copied,
		"owner":       w.OwnerID,
		"created_at":  w.CreatedAt,
		"updated_at":  w.UpdatedAt,
	}
	if w.Owner != nil {
		v["owner"] = publicUserView(w.Owner)
	}
	if w.Offers != nil {
		v["offers"] = offerViews(w.Offers, viewerID, w.OwnerID)
	}
	return v
}

func wishViews(wishes []entity.Wish, viewerID string) []gin.H {
	out := make([]gin.H, 0, len(wishes))
	for i := range wishes {
		out = append(out, wishView(&wishes[i], viewerID))
	}
	return out
}

func wishlistView(wl *entity.Wishlist, viewerID string) gin.H {
	v := gin.H{
		"id":          wl.ID,
		"name":        wl.Name,
		"description": wl.Description,
		"image":       wl.Image,
		"owner":       wl.OwnerID,
		"created_at":  wl.CreatedAt,
		"updated_at":  wl.UpdatedAt,
	}
	if wl.Items != nil {
		v["items"] = wishViews(wl.Items, viewerID)
	}
	return v
}

func wishlistViews(lists []entity.Wishlist, viewerID string) []gin.H {
	out := make([]gin.H, 0, len(lists))
	for i := range lists {
		out = append(out, wishlistView(&lists[i], viewerID))
	}
	return out
}
