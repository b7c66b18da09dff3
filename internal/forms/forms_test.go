package forms

import "testing"

func TestPostFormFields(t *testing.T) {
	form := PostForm("/api/v1/posts/new")
	if form.Method != "POST" {
		t.Fatalf("want POST got %s", form.Method)
	}
	names := map[string]Field{}
	for _, f := range form.Fields {
		names[f.Name] = f
	}
	for _, required := range []string{"title", "content", "status"} {
		field, ok := names[required]
		if !ok {
			t.Fatalf("missing field %s", required)
		}
		if !field.Required {
			t.Fatalf("field %s should be required", required)
		}
	}
	if len(names["status"].Options) != 2 {
		t.Fatalf("status should offer draft and published, got %d options", len(names["status"].Options))
	}
}

func TestCommentFormFields(t *testing.T) {
	form := CommentForm("/api/v1/posts/meu-post")
	if len(form.Fields) != 1 || form.Fields[0].Name != "content" {
		t.Fatalf("comment form should expose a single content field: %+v", form.Fields)
	}
	if form.Action != "/api/v1/posts/meu-post" {
		t.Fatalf("action not carried through: %s", form.Action)
	}
}
