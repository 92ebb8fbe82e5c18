package attendance

import (
	"github.com/qcc-attendance/attendance-backend-go/internal/domain/geofence"
	"github.com/qcc-attendance/attendance-backend-go/internal/pkg/validator"
)

// DeviceInfo identifies the device performing a check-in. The device
// type selects the radius override policy.
type DeviceInfo struct {
	DeviceID   string `json:"device_id"`
	DeviceType string `json:"device_type"`
}

var deviceTypes = []string{
	geofence.DeviceDesktop,
	geofence.DeviceMobile,
	geofence.DeviceTablet,
	geofence.DeviceOther,
}

type CheckInRequest struct {
	Latitude         float64     `json:"latitude"`
	Longitude        float64     `json:"longitude"`
	Accuracy         float64     `json:"accuracy"`
	LocationID       *string     `json:"location_id,omitempty"`
	IsRemoteLocation bool        `json:"is_remote_location"`
	LateReason       *string     `json:"late_reason,omitempty"`
	DeviceInfo       *DeviceInfo `json:"device_info,omitempty"`

	// Filled in by the HTTP layer for audit logging
	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

func (r *CheckInRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if !validator.IsValidAccuracy(r.Accuracy) {
		errs = append(errs, validator.ValidationError{
			Field:   "accuracy",
			Message: "accuracy must be a non-negative number",
		})
	}

	if r.LocationID != nil && !validator.IsValidUUID(*r.LocationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_id",
			Message: "location_id must be a valid UUID",
		})
	}

	if r.DeviceInfo != nil && !validator.IsInSlice(r.DeviceInfo.DeviceType, deviceTypes) {
		errs = append(errs, validator.ValidationError{
			Field:   "device_info.device_type",
			Message: "device_type must be one of: desktop, mobile, tablet, other",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

// DeviceType returns the device type for radius policy, defaulting to
// desktop when the client sent no device info.
func (r *CheckInRequest) DeviceType() string {
	if r.DeviceInfo == nil || r.DeviceInfo.DeviceType == "" {
		return geofence.DeviceDesktop
	}
	return r.DeviceInfo.DeviceType
}

type CheckOutRequest struct {
	Latitude            float64 `json:"latitude"`
	Longitude           float64 `json:"longitude"`
	Accuracy            float64 `json:"accuracy"`
	LocationID          *string `json:"location_id,omitempty"`
	EarlyCheckoutReason *string `json:"early_checkout_reason,omitempty"`

	IPAddress string `json:"-"`
	UserAgent string `json:"-"`
}

func (r *CheckOutRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if !validator.IsValidAccuracy(r.Accuracy) {
		errs = append(errs, validator.ValidationError{
			Field:   "accuracy",
			Message: "accuracy must be a non-negative number",
		})
	}

	if r.LocationID != nil && !validator.IsValidUUID(*r.LocationID) {
		errs = append(errs, validator.ValidationError{
			Field:   "location_id",
			Message: "location_id must be a valid UUID",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type ValidateLocationRequest struct {
	Latitude   float64     `json:"latitude"`
	Longitude  float64     `json:"longitude"`
	Accuracy   float64     `json:"accuracy"`
	DeviceInfo *DeviceInfo `json:"device_info,omitempty"`
}

func (r *ValidateLocationRequest) Validate() error {
	var errs validator.ValidationErrors

	if !validator.IsValidLatitude(r.Latitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "latitude",
			Message: "latitude must be between -90 and 90",
		})
	}

	if !validator.IsValidLongitude(r.Longitude) {
		errs = append(errs, validator.ValidationError{
			Field:   "longitude",
			Message: "longitude must be between -180 and 180",
		})
	}

	if !validator.IsValidAccuracy(r.Accuracy) {
		errs = append(errs, validator.ValidationError{
			Field:   "accuracy",
			Message: "accuracy must be a non-negative number",
		})
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

func (r *ValidateLocationRequest) DeviceType() string {
	if r.DeviceInfo == nil || r.DeviceInfo.DeviceType == "" {
		return geofence.DeviceDesktop
	}
	return r.DeviceInfo.DeviceType
}

type ValidateLocationResponse struct {
	CanCheckIn            bool    `json:"can_check_in"`
	Reason                string  `json:"reason"`
	NearestLocationID     *string `json:"nearest_location_id,omitempty"`
	NearestLocationName   *string `json:"nearest_location_name,omitempty"`
	DistanceMeters        float64 `json:"distance_meters"`
	EffectiveRadiusMeters float64 `json:"effective_radius_meters"`
	AccuracyWarning       string  `json:"accuracy_warning,omitempty"`
	Message               string  `json:"message"`
}

type RecordResponse struct {
	ID                   string   `json:"id"`
	UserID               string   `json:"user_id"`
	Date                 string   `json:"date"`
	CheckInTime          string   `json:"check_in_time"`
	CheckInLocationID    *string  `json:"check_in_location_id,omitempty"`
	CheckInLocationName  *string  `json:"check_in_location_name,omitempty"`
	CheckInLatitude      float64  `json:"check_in_latitude"`
	CheckInLongitude     float64  `json:"check_in_longitude"`
	CheckInMethod        string   `json:"check_in_method"`
	IsRemoteLocation     bool     `json:"is_remote_location"`
	CheckOutTime         *string  `json:"check_out_time,omitempty"`
	CheckOutLocationID   *string  `json:"check_out_location_id,omitempty"`
	CheckOutLocationName *string  `json:"check_out_location_name,omitempty"`
	CheckOutMethod       *string  `json:"check_out_method,omitempty"`
	WorkHours            *float64 `json:"work_hours,omitempty"`
	Status               string   `json:"status"`
	LateReason           *string  `json:"late_reason,omitempty"`
	EarlyCheckoutReason  *string  `json:"early_checkout_reason,omitempty"`
}

// Warning is an advisory attached to a check-in/out response. It never
// changes the accepted/rejected outcome.
type Warning struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

type CheckInResponse struct {
	Record                RecordResponse `json:"record"`
	Message               string         `json:"message"`
	IsLate                bool           `json:"is_late"`
	LateMinutes           int            `json:"late_minutes,omitempty"`
	RequiresLateReason    bool           `json:"requires_late_reason"`
	Warnings              []Warning      `json:"warnings,omitempty"`
	DistanceMeters        float64        `json:"distance_meters"`
	EffectiveRadiusMeters float64        `json:"effective_radius_meters,omitempty"`
}

type CheckOutResponse struct {
	Record          RecordResponse `json:"record"`
	Message         string         `json:"message"`
	IsEarlyCheckout bool           `json:"is_early_checkout"`
	Warnings        []Warning      `json:"warnings,omitempty"`
}

type MyAttendanceFilter struct {
	StartDate *string `json:"start_date,omitempty"` // YYYY-MM-DD
	EndDate   *string `json:"end_date,omitempty"`   // YYYY-MM-DD
}

func (f *MyAttendanceFilter) Validate() error {
	var errs validator.ValidationErrors

	if f.StartDate != nil && *f.StartDate != "" {
		if _, valid := validator.IsValidDate(*f.StartDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "start_date",
				Message: "start_date must be in YYYY-MM-DD format",
			})
		}
	}

	if f.EndDate != nil && *f.EndDate != "" {
		if _, valid := validator.IsValidDate(*f.EndDate); !valid {
			errs = append(errs, validator.ValidationError{
				Field:   "end_date",
				Message: "end_date must be in YYYY-MM-DD format",
			})
		}
	}

	if len(errs) > 0 {
		return errs
	}

	return nil
}

type DayClassificationResponse struct {
	Date          string   `json:"date"`
	Flags         DayFlags `json:"flags"`
	PrimaryStatus string   `json:"primary_status"`
}

// StaffDayStatus is one staff member's entry in a summary bucket.
type StaffDayStatus struct {
	UserID         string  `json:"user_id"`
	FullName       string  `json:"full_name"`
	DepartmentName *string `json:"department_name,omitempty"`
	Status         string  `json:"status"`
	CheckInTime    *string `json:"check_in_time,omitempty"`
	CheckOutTime   *string `json:"check_out_time,omitempty"`
	RecordID       *string `json:"attendance_record_id,omitempty"`
}

type DepartmentSummaryResponse struct {
	Date           string           `json:"date"`
	EarlyCheckIns  []StaffDayStatus `json:"early_check_ins"`
	NoCheckIns     []StaffDayStatus `json:"no_check_ins"`
	EarlyCheckouts []StaffDayStatus `json:"early_checkouts"`
	NoCheckouts    []StaffDayStatus `json:"no_checkouts"`
	TotalStaff     int              `json:"total_staff"`
	PresentStaff   int              `json:"present_staff"`
	AbsentStaff    int              `json:"absent_staff"`
}
