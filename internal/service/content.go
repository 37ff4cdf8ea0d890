package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/snjhope/content-api/internal/config"
	"github.com/snjhope/content-api/internal/model"
	"github.com/snjhope/content-api/internal/notion"
)

// ContentStore is the slice of the content store client the service needs.
// Defined here so tests can substitute a stub store.
type ContentStore interface {
	QueryDatabaseAll(ctx context.Context, databaseID string, query notion.Query) ([]notion.Page, error)
}

// ContentService reads each content type from the store, discards
// unpublished records, and normalizes the rest into flat, defaulted
// records. It holds no state between requests.
type ContentService struct {
	store     ContentStore
	databases config.DatabaseIDs
	pageSize  int
}

// ContentServiceConfig holds content service dependencies
type ContentServiceConfig struct {
	Store     ContentStore
	Databases config.DatabaseIDs
	PageSize  int
}

// NewContentService creates a new content service
func NewContentService(cfg ContentServiceConfig) *ContentService {
	pageSize := cfg.PageSize
	if pageSize <= 0 {
		pageSize = 100
	}
	return &ContentService{
		store:     cfg.Store,
		databases: cfg.Databases,
		pageSize:  pageSize,
	}
}

// publishedOnly keeps the pages whose published checkbox is true. Pages
// lacking the property are treated as unpublished. This is the single
// authoritative publication filter; the server-side query filter is only
// an optimization and is never relied on.
func publishedOnly(pages []notion.Page, property string) []notion.Page {
	kept := pages[:0:0]
	for _, page := range pages {
		if page.Checkbox(property) {
			kept = append(kept, page)
		}
	}
	return kept
}

// publishedFilter builds the server-side variant of the same predicate.
func publishedFilter(property string) *notion.Filter {
	return &notion.Filter{
		Property: property,
		Checkbox: &notion.CheckboxFilter{Equals: true},
	}
}

// Notices returns published notices, newest first.
func (s *ContentService) Notices(ctx context.Context) ([]model.Notice, error) {
	pages, err := s.store.QueryDatabaseAll(ctx, s.databases.Notices, notion.Query{
		PageSize: s.pageSize,
		Filter:   publishedFilter("Published"),
		Sorts:    []notion.Sort{{Property: "Date", Direction: notion.Descending}},
	})
	if err != nil {
		return nil, fmt.Errorf("query notices: %w", err)
	}

	notices := make([]model.Notice, 0, len(pages))
	for _, page := range publishedOnly(pages, "Published") {
		notices = append(notices, normalizeNotice(page))
	}
	return notices, nil
}

func normalizeNotice(page notion.Page) model.Notice {
	category := page.SelectName("Category")
	if category == "" {
		category = model.DefaultNoticeCategory
	}
	return model.Notice{
		ID:       page.ID,
		Title:    page.Title("Title"),
		Date:     page.DateStart("Date"),
		Category: category,
		Content:  page.PlainText("Content"),
		Pinned:   page.Checkbox("Pinned"),
		Views:    int(page.Number("Views")),
		URL:      page.URL,
	}
}

// Activities returns published activity reports, newest first.
func (s *ContentService) Activities(ctx context.Context) ([]model.Activity, error) {
	pages, err := s.store.QueryDatabaseAll(ctx, s.databases.Activities, notion.Query{
		PageSize: s.pageSize,
		Filter:   publishedFilter("Published"),
		Sorts:    []notion.Sort{{Property: "Date", Direction: notion.Descending}},
	})
	if err != nil {
		return nil, fmt.Errorf("query activities: %w", err)
	}

	activities := make([]model.Activity, 0, len(pages))
	for _, page := range publishedOnly(pages, "Published") {
		activities = append(activities, normalizeActivity(page))
	}
	return activities, nil
}

func normalizeActivity(page notion.Page) model.Activity {
	return model.Activity{
		ID:               page.ID,
		Title:            page.Title("Title"),
		Date:             page.DateStart("Date"),
		Program:          page.SelectName("Program"),
		Content:          page.PlainText("Content"),
		Location:         page.PlainText("Location"),
		ParticipantCount: int(page.Number("Participants")),
		Photos:           page.FileURLs("Photos"),
		Tags:             page.MultiSelectNames("Tags"),
		URL:              page.URL,
	}
}

// Programs returns published programs in display order.
func (s *ContentService) Programs(ctx context.Context) ([]model.Program, error) {
	pages, err := s.store.QueryDatabaseAll(ctx, s.databases.Programs, notion.Query{
		PageSize: s.pageSize,
		Filter:   publishedFilter("Published"),
		Sorts:    []notion.Sort{{Property: "Order", Direction: notion.Ascending}},
	})
	if err != nil {
		return nil, fmt.Errorf("query programs: %w", err)
	}

	programs := make([]model.Program, 0, len(pages))
	for _, page := range publishedOnly(pages, "Published") {
		programs = append(programs, normalizeProgram(page))
	}
	return programs, nil
}

func normalizeProgram(page notion.Page) model.Program {
	return model.Program{
		ID:          page.ID,
		Name:        page.Title("Title"),
		Category:    page.SelectName("Category"),
		Description: page.PlainText("Description"),
		Target:      joinNames(page.MultiSelectNames("Target")),
		Period:      page.PlainText("Period"),
		Image:       page.FirstFileURL("Image"),
		Order:       int(page.NumberOr("Order", model.DefaultProgramOrder)),
		Published:   page.Checkbox("Published"),
		URL:         page.URL,
	}
}

// Business returns published business entries in display order,
// optionally narrowed to one category.
func (s *ContentService) Business(ctx context.Context, category string) ([]model.Business, error) {
	filter := notion.Filter{
		And: []notion.Filter{*publishedFilter("공개여부")},
	}
	if category != "" {
		filter.And = append(filter.And, notion.Filter{
			Property: "카테고리",
			Select:   &notion.SelectFilter{Equals: category},
		})
	}

	pages, err := s.store.QueryDatabaseAll(ctx, s.databases.Business, notion.Query{
		PageSize: s.pageSize,
		Filter:   &filter,
		Sorts:    []notion.Sort{{Property: "순서", Direction: notion.Ascending}},
	})
	if err != nil {
		return nil, fmt.Errorf("query business: %w", err)
	}

	entries := make([]model.Business, 0, len(pages))
	for _, page := range publishedOnly(pages, "공개여부") {
		entries = append(entries, normalizeBusiness(page))
	}
	return entries, nil
}

func normalizeBusiness(page notion.Page) model.Business {
	createdAt := page.DateStart("작성일")
	if createdAt == "" {
		createdAt = page.CreatedTime
	}
	return model.Business{
		ID:          page.ID,
		Title:       page.Title("제목"),
		Category:    page.SelectName("카테고리"),
		Overview:    page.PlainText("개요"),
		Goal:        page.PlainText("목표"),
		Target:      page.PlainText("대상"),
		Content:     page.PlainText("내용"),
		Achievement: page.PlainText("성과"),
		Images:      page.FileURLs("이미지"),
		Order:       int(page.Number("순서")),
		CreatedAt:   createdAt,
	}
}

// Banners returns published hero banners in display order.
func (s *ContentService) Banners(ctx context.Context) ([]model.Banner, error) {
	pages, err := s.store.QueryDatabaseAll(ctx, s.databases.Banners, notion.Query{
		PageSize: s.pageSize,
		Filter:   publishedFilter("공개여부"),
		Sorts:    []notion.Sort{{Property: "순서", Direction: notion.Ascending}},
	})
	if err != nil {
		return nil, fmt.Errorf("query banners: %w", err)
	}

	banners := make([]model.Banner, 0, len(pages))
	for _, page := range publishedOnly(pages, "공개여부") {
		banners = append(banners, normalizeBanner(page))
	}
	return banners, nil
}

func normalizeBanner(page notion.Page) model.Banner {
	return model.Banner{
		ID:          page.ID,
		Title:       page.Title("제목"),
		Description: page.PlainText("설명"),
		Image:       page.FirstFileURL("이미지"),
		Order:       int(page.Number("순서")),
		Published:   page.Checkbox("공개여부"),
	}
}

// chairmanProfileRow is the well-known title of the about-page row.
const chairmanProfileRow = "이사장 프로필"

// ChairmanProfile returns the chairman greeting card data. The query
// selects a single well-known row, so no publication filter applies; a
// missing row yields the defaults with no image.
func (s *ContentService) ChairmanProfile(ctx context.Context) (model.ChairmanProfile, error) {
	pages, err := s.store.QueryDatabaseAll(ctx, s.databases.About, notion.Query{
		PageSize: 1,
		Filter: &notion.Filter{
			Property: "이름",
			Title:    &notion.TitleFilter{Equals: chairmanProfileRow},
		},
	})
	if err != nil {
		return model.ChairmanProfile{}, fmt.Errorf("query chairman profile: %w", err)
	}

	profile := model.ChairmanProfile{
		Name:     model.DefaultChairmanName,
		Position: model.DefaultChairmanPosition,
	}
	if len(pages) == 0 {
		return profile, nil
	}

	page := pages[0]
	if image := page.FirstFileURL("이미지"); image != "" {
		profile.Image = &image
	}
	if name := page.PlainText("이름 (한글)"); name != "" {
		profile.Name = name
	}
	if position := page.PlainText("직책"); position != "" {
		profile.Position = position
	}
	return profile, nil
}

func joinNames(names []string) string {
	return strings.Join(names, ", ")
}
