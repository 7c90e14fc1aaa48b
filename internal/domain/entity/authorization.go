package entity

// Action is a domain operation subject to role-based authorization
type Action string

const (
	ActionAppointmentCreate    Action = "appointment.create"
	ActionAppointmentConfirm   Action = "appointment.confirm"
	ActionAppointmentComplete  Action = "appointment.complete"
	ActionAppointmentCancel    Action = "appointment.cancel"
	ActionAppointmentView      Action = "appointment.view"
	ActionAppointmentSetStatus Action = "appointment.set_status"
	ActionAppointmentDelete    Action = "appointment.delete"
	ActionBillCreate           Action = "bill.create"
	ActionBillView             Action = "bill.view"
	ActionBillUpdatePayment    Action = "bill.update_payment"
)

// CanPerform is the authorization policy: it decides whether a role may
// perform an action, given whether the caller owns the target resource
// (a patient owns their appointments and bills through the user link on
// the patient profile; a doctor owns appointments assigned to them).
//
// Matrix:
//   - patient: create/cancel/view own appointments, create/view own
//     bills (a patient pays for and bills their own visit)
//   - doctor:  confirm/complete/cancel/view own appointments
//   - staff:   view all, create/cancel any appointment, billing
//   - admin:   everything staff can, plus generic status set and delete
func CanPerform(roleID int, action Action, ownsResource bool) bool {
	switch roleID {
	case RoleIDAdmin:
		return true
	case RoleIDStaff:
		switch action {
		case ActionAppointmentSetStatus, ActionAppointmentDelete:
			return false
		}
		return true
	case RoleIDDoctor:
		switch action {
		case ActionAppointmentConfirm, ActionAppointmentComplete,
			ActionAppointmentCancel, ActionAppointmentView:
			return ownsResource
		}
		return false
	case RoleIDPatient:
		switch action {
		case ActionAppointmentCreate:
			return true
		case ActionAppointmentCancel, ActionAppointmentView,
			ActionBillCreate, ActionBillView:
			return ownsResource
		}
		return false
	}
	return false
}
