package api

import (
	"net/http"

	"github.com/frozz/storefront/internal/api/handlers"
	"github.com/frozz/storefront/internal/api/middleware"
)

type Handlers struct {
	Users         *handlers.UserHandler
	Clients       *handlers.ClientHandler
	Categories    *handlers.CategoryHandler
	Products      *handlers.ProductHandler
	Cart          *handlers.CartHandler
	Quotations    *handlers.QuotationHandler
	QuoteBuilder  *handlers.QuoteBuilderHandler
	Favorites     *handlers.FavoriteHandler
	Addresses     *handlers.AddressHandler
	Rentals       *handlers.RentalHandler
	Notifications *handlers.NotificationHandler
}

// NewRouter registers the /api/v1 surface. Cart and checkout routes accept
// both anonymous sessions and bearer tokens; staff routes require a staff token.
func NewRouter(h Handlers, auth *middleware.AuthMiddleware) *http.ServeMux {

	user := func(next http.Handler) http.HandlerFunc { return auth.Authenticate(next) }
	staff := func(next http.Handler) http.HandlerFunc { return auth.Authenticate(middleware.RequireStaff(next)) }
	optional := func(next http.Handler) http.HandlerFunc { return auth.OptionalAuthenticate(next) }

	mux := http.NewServeMux()

	// Users
	mux.HandleFunc("POST /api/v1/users/register", h.Users.Register())
	mux.HandleFunc("POST /api/v1/users/login", h.Users.Login())
	mux.HandleFunc("GET /api/v1/users/profile", user(h.Users.Profile()))

	// Catalog
	mux.HandleFunc("GET /api/v1/categories", h.Categories.ListCategories())
	mux.HandleFunc("POST /api/v1/categories", staff(h.Categories.CreateCategory()))
	mux.HandleFunc("GET /api/v1/products", optional(h.Products.ListProducts()))
	mux.HandleFunc("GET /api/v1/products/{id}", optional(h.Products.GetProduct()))
	mux.HandleFunc("GET /api/v1/products/{id}/variations", h.Products.ListVariations())
	mux.HandleFunc("GET /api/v1/products/{id}/attributes", h.Products.ListAttributes())

	// Inventory
	mux.HandleFunc("GET /api/v1/inventory/dashboard", staff(h.Products.Dashboard()))
	mux.HandleFunc("POST /api/v1/inventory/products", staff(h.Products.CreateProduct()))
	mux.HandleFunc("PUT /api/v1/inventory/products/{id}", staff(h.Products.UpdateProduct()))
	mux.HandleFunc("POST /api/v1/inventory/products/{id}/toggle", staff(h.Products.ToggleAvailability()))
	mux.HandleFunc("POST /api/v1/inventory/products/{id}/duplicate", staff(h.Products.DuplicateProduct()))
	mux.HandleFunc("POST /api/v1/inventory/products/{id}/variations", staff(h.Products.AddVariation()))
	mux.HandleFunc("DELETE /api/v1/inventory/products/{id}/variations/{variationId}", staff(h.Products.DeleteVariation()))
	mux.HandleFunc("POST /api/v1/inventory/products/{id}/attributes", staff(h.Products.AddAttribute()))
	mux.HandleFunc("DELETE /api/v1/inventory/products/{id}/attributes/{attributeId}", staff(h.Products.DeleteAttribute()))

	// Cart
	mux.HandleFunc("GET /api/v1/cart", optional(h.Cart.GetCart()))
	mux.HandleFunc("POST /api/v1/cart/items", optional(h.Cart.AddItem()))
	mux.HandleFunc("PUT /api/v1/cart/items", optional(h.Cart.UpdateQuantity()))
	mux.HandleFunc("DELETE /api/v1/cart/items/{productId}", optional(h.Cart.RemoveItem()))

	// Checkout
	mux.HandleFunc("POST /api/v1/checkout", user(h.Quotations.Checkout()))
	mux.HandleFunc("POST /api/v1/checkout/guest", h.Quotations.GuestCheckout())

	// Quote builder
	mux.HandleFunc("GET /api/v1/quote-builder", staff(h.QuoteBuilder.GetBuilder()))
	mux.HandleFunc("POST /api/v1/quote-builder/items", staff(h.QuoteBuilder.AddProducts()))
	mux.HandleFunc("PUT /api/v1/quote-builder/items", staff(h.QuoteBuilder.UpdateQuantity()))
	mux.HandleFunc("DELETE /api/v1/quote-builder/items/{productId}", staff(h.QuoteBuilder.RemoveProduct()))
	mux.HandleFunc("POST /api/v1/quote-builder/generate", staff(h.QuoteBuilder.Generate()))

	// Quotations
	mux.HandleFunc("GET /api/v1/quotations", staff(h.Quotations.ListQuotations()))
	mux.HandleFunc("GET /api/v1/quotations/mine", user(h.Quotations.MyQuotations()))
	mux.HandleFunc("GET /api/v1/sales", staff(h.Quotations.ListSales()))
	mux.HandleFunc("GET /api/v1/quotations/{id}", user(h.Quotations.GetQuotation()))
	mux.HandleFunc("GET /api/v1/quotations/{id}/pdf", user(h.Quotations.DownloadPDF()))
	mux.HandleFunc("PATCH /api/v1/quotations/{id}/status", staff(h.Quotations.UpdateStatus()))
	mux.HandleFunc("POST /api/v1/quotations/{id}/payment-proof", staff(h.Quotations.UploadPaymentProof()))
	mux.HandleFunc("DELETE /api/v1/quotations/{id}", staff(h.Quotations.DeleteQuotation()))
	mux.HandleFunc("GET /api/v1/quotations/{id}/notifications", staff(h.Notifications.ListNotifications()))
	mux.HandleFunc("GET /api/v1/notifications/{id}", staff(h.Notifications.GetNotification()))

	// Favorites and addresses
	mux.HandleFunc("POST /api/v1/favorites/{productId}", user(h.Favorites.ToggleFavorite()))
	mux.HandleFunc("GET /api/v1/favorites", user(h.Favorites.ListFavorites()))
	mux.HandleFunc("GET /api/v1/addresses", user(h.Addresses.ListAddresses()))
	mux.HandleFunc("POST /api/v1/addresses", user(h.Addresses.CreateAddress()))
	mux.HandleFunc("DELETE /api/v1/addresses/{id}", user(h.Addresses.DeleteAddress()))
	mux.HandleFunc("POST /api/v1/addresses/{id}/default", user(h.Addresses.SetDefaultAddress()))

	// Rentals
	mux.HandleFunc("GET /api/v1/rentals/quote", h.Rentals.QuoteRental())
	mux.HandleFunc("POST /api/v1/rentals", user(h.Rentals.CreateRental()))
	mux.HandleFunc("GET /api/v1/rentals", user(h.Rentals.ListRentals()))
	mux.HandleFunc("PATCH /api/v1/rentals/{id}/status", staff(h.Rentals.UpdateRentalStatus()))

	// Client manager
	mux.HandleFunc("GET /api/v1/clients", staff(h.Clients.ListClients()))
	mux.HandleFunc("POST /api/v1/clients", staff(h.Clients.CreateClient()))
	mux.HandleFunc("POST /api/v1/clients/{id}/password", staff(h.Clients.RegeneratePassword()))

	return mux
}
