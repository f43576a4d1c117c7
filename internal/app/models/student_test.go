package models

import (
	"reflect"
	"testing"
)

func TestMarkAttendancePrepends(t *testing.T) {
	s := &Student{
		Attendance: AttendanceMap{"T01": {"absent", "present"}},
	}

	s.MarkAttendance("T01", "present")

	want := []string{"present", "absent", "present"}
	if !reflect.DeepEqual(s.Attendance["T01"], want) {
		t.Fatalf("attendance history = %v, want %v", s.Attendance["T01"], want)
	}
}

func TestMarkAttendanceFirstEntry(t *testing.T) {
	s := &Student{}

	s.MarkAttendance("T02", "present")

	if got := s.Attendance["T02"]; len(got) != 1 || got[0] != "present" {
		t.Fatalf("attendance history = %v, want [present]", got)
	}
}

func TestMarkAttendanceIndependentMarkers(t *testing.T) {
	s := &Student{}

	s.MarkAttendance("T01", "present")
	s.MarkAttendance("T02", "absent")
	s.MarkAttendance("T01", "absent")

	if !reflect.DeepEqual(s.Attendance["T01"], []string{"absent", "present"}) {
		t.Errorf("T01 history = %v, want [absent present]", s.Attendance["T01"])
	}
	if !reflect.DeepEqual(s.Attendance["T02"], []string{"absent"}) {
		t.Errorf("T02 history = %v, want [absent]", s.Attendance["T02"])
	}
}

func TestFeeStatusIsValid(t *testing.T) {
	if !FeeStatusPaid.IsValid() || !FeeStatusDue.IsValid() {
		t.Error("paid and due must be valid statuses")
	}
	if FeeStatus("pending").IsValid() {
		t.Error("unknown status must be invalid")
	}
	if FeeStatus("").IsValid() {
		t.Error("empty status must be invalid")
	}
}
