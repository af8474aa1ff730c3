package domain

import (
	"fmt"
	"strings"
)

// GameType is the multiplayer mod the server runs.
type GameType string

const (
	GameSAMP GameType = "SAMP"
	GameCRMP GameType = "CRMP"
)

// Defaults applied to a freshly opened order dialog.
const (
	DefaultSlots    = 10
	DefaultDays     = 30
	DefaultGameType = GameSAMP
)

// OrderDraft is an unsubmitted order. Plan is carried by value so the draft
// keeps the rates it was priced with.
type OrderDraft struct {
	Plan          Plan     `json:"plan"`
	Slots         int      `json:"slots"`
	Days          int      `json:"days"`
	GameType      GameType `json:"game_type"`
	ServerName    string   `json:"server_name"    validate:"required"`
	CustomerName  string   `json:"customer_name"  validate:"required"`
	CustomerEmail string   `json:"customer_email" validate:"required,email"`
	CustomerPhone string   `json:"customer_phone,omitempty"`
}

// NewDraft returns a draft for plan with the dialog defaults, slots already
// within the plan's bound.
func NewDraft(plan Plan) OrderDraft {
	slots := DefaultSlots
	if slots > plan.MaxSlots {
		slots = plan.MaxSlots
	}
	return OrderDraft{
		Plan:     plan,
		Slots:    slots,
		Days:     DefaultDays,
		GameType: DefaultGameType,
	}
}

// ProvisioningResult holds the access credentials of a newly created server.
// It is only ever kept in memory.
type ProvisioningResult struct {
	ServerIP    string `json:"server_ip"`
	ServerPort  int    `json:"server_port"`
	FTPHost     string `json:"ftp_host"`
	FTPUser     string `json:"ftp_user"`
	FTPPassword string `json:"ftp_password"`
	DBHost      string `json:"db_host"`
	DBName      string `json:"db_name"`
	DBUser      string `json:"db_user"`
	DBPassword  string `json:"db_password"`
}

// Address renders the game server endpoint as ip:port.
func (r ProvisioningResult) Address() string {
	return fmt.Sprintf("%s:%d", r.ServerIP, r.ServerPort)
}

// OrderRecord is a previously submitted order as reported by the listing query.
// The server_* fields come from a left join and may be absent.
type OrderRecord struct {
	ID           int     `json:"id"`
	ServerName   string  `json:"server_name"`
	PlanType     string  `json:"plan_type"`
	Slots        int     `json:"slots"`
	Days         int     `json:"days"`
	TotalPrice   float64 `json:"total_price"`
	GameType     string  `json:"game_type"`
	Status       string  `json:"status"`
	CreatedAt    string  `json:"created_at,omitempty"`
	ExpiresAt    string  `json:"expires_at"`
	ServerIP     string  `json:"server_ip,omitempty"`
	ServerPort   int     `json:"server_port,omitempty"`
	ServerStatus string  `json:"server_status,omitempty"`
}

// StatusKind is the reconciled display state of an order.
type StatusKind string

const (
	StatusActive    StatusKind = "active"
	StatusPending   StatusKind = "pending"
	StatusSuspended StatusKind = "suspended"
	StatusUnknown   StatusKind = "unknown"
)

// DisplayStatus is what the dashboard renders for an order.
type DisplayStatus struct {
	Kind  StatusKind `json:"kind"`
	Color string     `json:"color"`
	Label string     `json:"label"`
	Raw   string     `json:"raw"`
}

type statusEntry struct {
	kind  StatusKind
	label string
}

// statusTable maps both vocabularies (order lifecycle and live server state)
// onto display kinds.
var statusTable = map[string]statusEntry{
	"active":     {StatusActive, "Active"},
	"running":    {StatusActive, "Running"},
	"pending":    {StatusPending, "Pending"},
	"installing": {StatusPending, "Installing"},
	"suspended":  {StatusSuspended, "Suspended"},
	"stopped":    {StatusSuspended, "Stopped"},
}

var kindColors = map[StatusKind]string{
	StatusActive:    "green",
	StatusPending:   "yellow",
	StatusSuspended: "orange",
	StatusUnknown:   "red",
}

// NormalizeStatus reconciles the record's status fields. A non-empty
// server_status wins over the order status.
func NormalizeStatus(r OrderRecord) DisplayStatus {
	raw := r.ServerStatus
	if raw == "" {
		raw = r.Status
	}
	entry, ok := statusTable[raw]
	if !ok {
		entry = statusEntry{kind: StatusUnknown, label: "Unknown"}
	}
	return DisplayStatus{
		Kind:  entry.kind,
		Color: kindColors[entry.kind],
		Label: entry.label,
		Raw:   raw,
	}
}

// ParseGameType accepts the two supported game types, ignoring case.
func ParseGameType(s string) (GameType, bool) {
	switch GameType(strings.ToUpper(strings.TrimSpace(s))) {
	case GameSAMP:
		return GameSAMP, true
	case GameCRMP:
		return GameCRMP, true
	}
	return "", false
}
