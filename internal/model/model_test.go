package model

import (
	"encoding/json"
	"testing"
)

func TestCourseDecodesBothIdentifierKeys(t *testing.T) {
	cases := map[string]struct {
		payload string
		want    string
	}{
		"canonical key": {`{"uuid_course":"c-1","title":"Go"}`, "c-1"},
		"legacy key":    {`{"id_course":"c-2","title":"Go"}`, "c-2"},
		"both keys":     {`{"uuid_course":"c-3","id_course":"c-legacy","title":"Go"}`, "c-3"},
	}

	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			var course Course
			if err := json.Unmarshal([]byte(tc.payload), &course); err != nil {
				t.Fatalf("unmarshal: %v", err)
			}
			if course.UUIDCourse != tc.want {
				t.Errorf("UUIDCourse = %q, want %q", course.UUIDCourse, tc.want)
			}
		})
	}
}

func TestUserPasswordIsWriteOnly(t *testing.T) {
	data, err := json.Marshal(User{UUIDUser: "u-1", Name: "Syauqi"})
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if _, present := fields["password"]; present {
		t.Error("empty password serialized; the field must be write-only")
	}
}
