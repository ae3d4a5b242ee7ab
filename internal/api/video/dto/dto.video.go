// Package dto - cấu trúc vào/ra cho domain video.
package dto

// VideoPublishInput dữ liệu form khi publish video mới (kèm file videoFile, thumbnail)
type VideoPublishInput struct {
	Title       string  `form:"title" json:"title" validate:"required,max=256,no_xss"`
	Description string  `form:"description" json:"description" validate:"omitempty,max=4096,no_xss"`
	Duration    float64 `form:"duration" json:"duration" validate:"omitempty,gte=0"`
}

// VideoUpdateInput dữ liệu cập nhật video, field rỗng giữ nguyên giá trị cũ
type VideoUpdateInput struct {
	Title       string `form:"title" json:"title" validate:"omitempty,max=256,no_xss"`
	Description string `form:"description" json:"description" validate:"omitempty,max=4096,no_xss"`
}

// VideoListQuery tham số lọc/sắp xếp danh sách video
type VideoListQuery struct {
	Query    string `query:"query" validate:"omitempty,max=256"`
	UserID   string `query:"userId" validate:"omitempty,len=24,hexadecimal"`
	SortBy   string `query:"sortBy" validate:"omitempty,oneof=createdAt views duration title"`
	SortType string `query:"sortType" validate:"omitempty,oneof=asc desc"`
}

// VideoIDParams tham số đường dẫn chứa id video
type VideoIDParams struct {
	ID string `uri:"id" validate:"required,len=24,hexadecimal"`
}
