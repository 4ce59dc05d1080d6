package models

const (
	RoleAdmin = "admin"
	RoleAgent = "agent"
)

// Agent adalah akun agen penjualan. KodeAgen unik dan dipakai sebagai
// user_id pada booking order.
type Agent struct {
	ID       int64  `json:"id"`
	KodeAgen string `json:"kode_agen"`
	Nama     string `json:"nama"`
	Email    string `json:"email,omitempty"`
	Role     string `json:"role"`
}
