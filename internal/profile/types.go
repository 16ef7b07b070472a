package profile

// BankDetails holds the payout account of a restaurant.
type BankDetails struct {
	BankPhoneNumber string `json:"bankPhoneNumber,omitempty"`
	BankName        string `json:"bankName,omitempty"`
	BankBranch      string `json:"bankBranch,omitempty"`
	AccountNumber   string `json:"accountNumber,omitempty"`
	AccountHolder   string `json:"accountHolder,omitempty"`
	IFSCCode        string `json:"ifscCode,omitempty"`
	CustomerID      string `json:"customerId,omitempty"`
}

// Documents holds the uploaded verification document URLs the backend
// serves back after a multipart profile update.
type Documents struct {
	ProfileImage string   `json:"profileImage,omitempty"`
	MessImages   []string `json:"messImages,omitempty"`
	Passbook     string   `json:"passbook,omitempty"`
	AadhaarCard  string   `json:"aadhaarCard,omitempty"`
	PanCard      string   `json:"panCard,omitempty"`
}

// Restaurant is the owning profile record for a session.
type Restaurant struct {
	ID             string      `json:"id,omitempty"`
	Phone          string      `json:"phone,omitempty"`
	FirstName      string      `json:"firstName,omitempty"`
	LastName       string      `json:"lastName,omitempty"`
	DateOfBirth    string      `json:"dateOfBirth,omitempty"`
	BusinessName   string      `json:"businessName,omitempty"`
	Email          string      `json:"email,omitempty"`
	Address        string      `json:"address,omitempty"`
	City           string      `json:"city,omitempty"`
	PinCode        string      `json:"pinCode,omitempty"`
	State          string      `json:"state,omitempty"`
	Category       string      `json:"category,omitempty"` // Veg, Non Veg or Mix
	Specialization string      `json:"specialization,omitempty"`
	BankDetails    BankDetails `json:"bankDetails,omitzero"`
	Documents      Documents   `json:"documents,omitzero"`
	Status         string      `json:"status,omitempty"` // pending, approved, rejected, suspended
	IsActive       bool        `json:"isActive,omitempty"`
	IsApproved     bool        `json:"isApproved,omitempty"`
	IsVerified     bool        `json:"isVerified,omitempty"`
	IsProfile      bool        `json:"isProfile,omitempty"`
	IsOnline       bool        `json:"isOnline,omitempty"`
	LastLogin      string      `json:"lastLogin,omitempty"`
	CreatedAt      string      `json:"createdAt,omitempty"`
}

// Dashboard is the aggregate overview the backend computes per restaurant.
type Dashboard struct {
	RestaurantInfo struct {
		Name         string `json:"name"`
		BusinessName string `json:"businessName"`
		Status       string `json:"status"`
		IsActive     bool   `json:"isActive"`
		IsApproved   bool   `json:"isApproved"`
	} `json:"restaurantInfo"`
	Stats struct {
		TotalOrders    int     `json:"totalOrders"`
		TotalRevenue   float64 `json:"totalRevenue"`
		TotalCustomers int     `json:"totalCustomers"`
		AverageRating  float64 `json:"averageRating"`
	} `json:"stats"`
}
