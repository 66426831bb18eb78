package util

import (
	"Crudboard/internal/model"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionAttachments(t *testing.T) {
	files := []model.Attachment{
		{ID: 1, FileName: "a.jpg", FileType: model.FileTypeImage},
		{ID: 2, FileName: "b.pdf", FileType: model.FileTypeDocument},
		{ID: 3, FileName: "c.png", FileType: model.FileTypeImage},
		{ID: 4, FileName: "d.docx", FileType: model.FileTypeDocument},
		{ID: 5, FileName: "e.gif", FileType: model.FileTypeImage},
	}

	images, documents := PartitionAttachments(files)

	assert.Len(t, images, 3)
	assert.Len(t, documents, 2)

	seen := map[int64]int{}
	for _, f := range images {
		assert.Equal(t, model.FileTypeImage, f.FileType)
		seen[f.ID]++
	}
	for _, f := range documents {
		assert.Equal(t, model.FileTypeDocument, f.FileType)
		seen[f.ID]++
	}
	for id, n := range seen {
		assert.Equal(t, 1, n, "attachment %d appears more than once", id)
	}

	// 顺序不变
	assert.Equal(t, int64(1), images[0].ID)
	assert.Equal(t, int64(3), images[1].ID)
	assert.Equal(t, int64(5), images[2].ID)
}

func TestPartitionAttachments_Empty(t *testing.T) {
	images, documents := PartitionAttachments(nil)
	assert.Empty(t, images)
	assert.Empty(t, documents)
}

func TestFormatFileSize(t *testing.T) {
	tests := []struct {
		bytes int64
		want  string
	}{
		{512, "512 B"},
		{1023, "1023 B"},
		{2048, "2.0 KB"},
		{1536, "1.5 KB"},
		{5 * 1024 * 1024, "5.0 MB"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatFileSize(tt.bytes))
	}
}

func TestNameInitial(t *testing.T) {
	assert.Equal(t, "홍", NameInitial("홍길동"))
	assert.Equal(t, "a", NameInitial("alice"))
	assert.Equal(t, "U", NameInitial(""))
}
