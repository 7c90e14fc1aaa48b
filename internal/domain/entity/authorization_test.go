package entity

import "testing"

func TestCanPerform_Admin(t *testing.T) {
	actions := []Action{
		ActionAppointmentCreate, ActionAppointmentConfirm, ActionAppointmentComplete,
		ActionAppointmentCancel, ActionAppointmentView, ActionAppointmentSetStatus,
		ActionAppointmentDelete, ActionBillCreate, ActionBillView, ActionBillUpdatePayment,
	}
	for _, action := range actions {
		if !CanPerform(RoleIDAdmin, action, false) {
			t.Fatalf("admin denied %s", action)
		}
	}
}

func TestCanPerform_Staff(t *testing.T) {
	if !CanPerform(RoleIDStaff, ActionAppointmentCreate, false) {
		t.Fatal("staff should create appointments")
	}
	if !CanPerform(RoleIDStaff, ActionBillCreate, false) {
		t.Fatal("staff should create bills")
	}
	if !CanPerform(RoleIDStaff, ActionBillUpdatePayment, false) {
		t.Fatal("staff should update bill payments")
	}
	if CanPerform(RoleIDStaff, ActionAppointmentSetStatus, false) {
		t.Fatal("staff must not set arbitrary status")
	}
	if CanPerform(RoleIDStaff, ActionAppointmentDelete, false) {
		t.Fatal("staff must not delete appointments")
	}
}

func TestCanPerform_Doctor(t *testing.T) {
	owned := []Action{ActionAppointmentConfirm, ActionAppointmentComplete, ActionAppointmentCancel, ActionAppointmentView}
	for _, action := range owned {
		if !CanPerform(RoleIDDoctor, action, true) {
			t.Fatalf("doctor denied %s on own appointment", action)
		}
		if CanPerform(RoleIDDoctor, action, false) {
			t.Fatalf("doctor allowed %s on another doctor's appointment", action)
		}
	}
	if CanPerform(RoleIDDoctor, ActionBillCreate, true) {
		t.Fatal("doctor must not create bills")
	}
	if CanPerform(RoleIDDoctor, ActionAppointmentCreate, true) {
		t.Fatal("doctor must not create appointments")
	}
}

func TestCanPerform_Patient(t *testing.T) {
	if !CanPerform(RoleIDPatient, ActionAppointmentCreate, false) {
		t.Fatal("patient should book appointments")
	}
	if !CanPerform(RoleIDPatient, ActionAppointmentCancel, true) {
		t.Fatal("patient should cancel own appointment")
	}
	if CanPerform(RoleIDPatient, ActionAppointmentCancel, false) {
		t.Fatal("patient must not cancel another patient's appointment")
	}
	if !CanPerform(RoleIDPatient, ActionBillView, true) {
		t.Fatal("patient should view own bill")
	}
	if CanPerform(RoleIDPatient, ActionBillView, false) {
		t.Fatal("patient must not view another patient's bill")
	}
	if !CanPerform(RoleIDPatient, ActionBillCreate, true) {
		t.Fatal("patient should bill their own visit")
	}
	if CanPerform(RoleIDPatient, ActionBillCreate, false) {
		t.Fatal("patient must not bill another patient's visit")
	}
	if CanPerform(RoleIDPatient, ActionAppointmentConfirm, true) {
		t.Fatal("patient must not confirm appointments")
	}
}

func TestCanPerform_UnknownRole(t *testing.T) {
	if CanPerform(0, ActionAppointmentView, true) {
		t.Fatal("unknown role must be denied")
	}
	if CanPerform(99, ActionAppointmentCreate, true) {
		t.Fatal("unknown role must be denied")
	}
}
