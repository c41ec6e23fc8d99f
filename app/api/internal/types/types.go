// Code scaffolded by goctl. Safe to edit.
// goctl 1.9.2

package types

type (
	RegisterRequest struct {
		Username string `json:"username"`
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	LoginRequest struct {
		Username string `json:"username"`
		Password string `json:"password"`
	}

	AuthResponse struct {
		User         UserInfo `json:"user"`
		AccessToken  string   `json:"accessToken"`
		RefreshToken string   `json:"refreshToken"`
		ExpiresIn    int64    `json:"expiresIn"`
	}

	UserInfo struct {
		Id        int64  `json:"id"`
		Username  string `json:"username"`
		Email     string `json:"email"`
		Role      string `json:"role"`
		CreatedAt string `json:"createdAt"`
	}

	UpdateUserInfoRequest struct {
		Username string `json:"username,optional"`
		Email    string `json:"email,optional"`
	}
)

type (
	ProductMedia struct {
		Url      string `json:"url"`
		Type     string `json:"type"`
		Alt      string `json:"alt,optional"`
		Position int32  `json:"position,optional"`
	}

	CreateProductRequest struct {
		Name              string         `json:"name"`
		Description       string         `json:"description,optional"`
		Sku               string         `json:"sku,optional"`
		PriceCents        int64          `json:"priceCents"`
		ComparePriceCents int64          `json:"comparePriceCents,optional"`
		StockQuantity     int64          `json:"stockQuantity,optional"`
		Ribbon            string         `json:"ribbon,optional"`
		Category          string         `json:"category,optional"`
		Media             []ProductMedia `json:"media,optional"`
	}

	UpdateProductRequest struct {
		ProductId         string         `path:"id"`
		Name              string         `json:"name,optional"`
		Description       string         `json:"description,optional"`
		Sku               string         `json:"sku,optional"`
		PriceCents        int64          `json:"priceCents,optional"`
		ComparePriceCents int64          `json:"comparePriceCents,optional"`
		StockQuantity     int64          `json:"stockQuantity,optional,default=-1"`
		Ribbon            string         `json:"ribbon,optional"`
		Category          string         `json:"category,optional"`
		Media             []ProductMedia `json:"media,optional"`
	}

	ProductPathRequest struct {
		ProductId string `path:"id"`
	}

	ListProductsRequest struct {
		Category string `form:"category,optional"`
		Limit    int64  `form:"limit,optional"`
	}

	Product struct {
		Id                string         `json:"id"`
		Name              string         `json:"name"`
		Description       string         `json:"description,omitempty"`
		Sku               string         `json:"sku,omitempty"`
		PriceCents        int64          `json:"priceCents"`
		ComparePriceCents int64          `json:"comparePriceCents,omitempty"`
		StockQuantity     int64          `json:"stockQuantity"`
		IsInStock         bool           `json:"isInStock"`
		Ribbon            string         `json:"ribbon,omitempty"`
		Category          string         `json:"category,omitempty"`
		Media             []ProductMedia `json:"media,omitempty"`
		CreatedAt         string         `json:"createdAt"`
		UpdatedAt         string         `json:"updatedAt"`
	}

	ProductListResponse struct {
		Products []Product `json:"products"`
	}
)

type (
	CreateReviewRequest struct {
		ProductId string   `json:"productId"`
		Rating    int32    `json:"rating"`
		Title     string   `json:"title,optional"`
		Content   string   `json:"content"`
		Images    []string `json:"images,optional"`
	}

	UpdateReviewRequest struct {
		ReviewId string   `path:"id"`
		Rating   int32    `json:"rating,optional"`
		Title    string   `json:"title,optional"`
		Content  string   `json:"content,optional"`
		Images   []string `json:"images,optional"`
	}

	ReviewPathRequest struct {
		ReviewId string `path:"id"`
	}

	ListReviewsRequest struct {
		ProductId string `path:"id"`
	}

	Review struct {
		Id        string   `json:"id"`
		ProductId string   `json:"productId"`
		UserId    int64    `json:"userId"`
		Rating    int32    `json:"rating"`
		Title     string   `json:"title,omitempty"`
		Content   string   `json:"content"`
		Images    []string `json:"images,omitempty"`
		CreatedAt string   `json:"createdAt"`
		UpdatedAt string   `json:"updatedAt"`
	}

	ReviewListResponse struct {
		Reviews []Review `json:"reviews"`
	}
)

type (
	AddCartItemRequest struct {
		ProductId string `json:"productId"`
		Quantity  int64  `json:"quantity"`
	}

	CartItemPathRequest struct {
		ItemId int64 `path:"id"`
	}

	UpdateCartItemRequest struct {
		ItemId   int64 `path:"id"`
		Quantity int64 `json:"quantity"`
	}

	CartItem struct {
		Id        int64  `json:"id"`
		ProductId string `json:"productId"`
		Quantity  int64  `json:"quantity"`
		CreatedAt string `json:"createdAt"`
	}

	CartResponse struct {
		Items []CartItem `json:"items"`
	}
)

type (
	OrderItemInput struct {
		ProductId string `json:"productId"`
		Quantity  int64  `json:"quantity"`
	}

	CreateOrderRequest struct {
		Items              []OrderItemInput `json:"items"`
		PaymentMethod      string           `json:"paymentMethod,optional"`
		ShippingLine1      string           `json:"shippingLine1,optional"`
		ShippingLine2      string           `json:"shippingLine2,optional"`
		ShippingCity       string           `json:"shippingCity,optional"`
		ShippingState      string           `json:"shippingState,optional"`
		ShippingCountry    string           `json:"shippingCountry,optional"`
		ShippingPostalCode string           `json:"shippingPostalCode,optional"`
		DeliveryFeeCents   int64            `json:"deliveryFeeCents,optional"`
	}

	UpdateOrderRequest struct {
		OrderId            int64            `path:"id"`
		Items              []OrderItemInput `json:"items,optional"`
		PaymentMethod      string           `json:"paymentMethod,optional"`
		ShippingLine1      string           `json:"shippingLine1,optional"`
		ShippingLine2      string           `json:"shippingLine2,optional"`
		ShippingCity       string           `json:"shippingCity,optional"`
		ShippingState      string           `json:"shippingState,optional"`
		ShippingCountry    string           `json:"shippingCountry,optional"`
		ShippingPostalCode string           `json:"shippingPostalCode,optional"`
	}

	OrderPathRequest struct {
		OrderId int64 `path:"id"`
	}

	OrderNumberPathRequest struct {
		OrderNumber string `path:"orderNumber"`
	}

	OrderItem struct {
		Id          int64  `json:"id"`
		ProductId   string `json:"productId"`
		ProductName string `json:"productName"`
		PriceCents  int64  `json:"priceCents"`
		Quantity    int64  `json:"quantity"`
		TotalCents  int64  `json:"totalCents"`
	}

	Order struct {
		Id                 int64       `json:"id"`
		OrderNumber        string      `json:"orderNumber"`
		OrderDate          string      `json:"orderDate"`
		Status             string      `json:"status"`
		PaymentStatus      string      `json:"paymentStatus"`
		PaymentMethod      string      `json:"paymentMethod,omitempty"`
		ShippingLine1      string      `json:"shippingLine1,omitempty"`
		ShippingLine2      string      `json:"shippingLine2,omitempty"`
		ShippingCity       string      `json:"shippingCity,omitempty"`
		ShippingState      string      `json:"shippingState,omitempty"`
		ShippingCountry    string      `json:"shippingCountry,omitempty"`
		ShippingPostalCode string      `json:"shippingPostalCode,omitempty"`
		SubtotalCents      int64       `json:"subtotalCents"`
		DeliveryFeeCents   int64       `json:"deliveryFeeCents"`
		TotalCents         int64       `json:"totalCents"`
		Items              []OrderItem `json:"items"`
	}

	OrderListResponse struct {
		Orders []Order `json:"orders"`
	}
)

type (
	CreatePaymentIntentRequest struct {
		OrderId int64 `json:"orderId"`
	}

	PaymentIntentResponse struct {
		IntentId     string `json:"intentId"`
		ClientSecret string `json:"clientSecret"`
		AmountCents  int64  `json:"amountCents"`
		Currency     string `json:"currency"`
	}
)
