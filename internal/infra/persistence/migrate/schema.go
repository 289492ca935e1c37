// Package migrate 定义数据库表结构，交给 ent 的 schema 迁移器自动建表与升级。
package migrate

import (
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

const textSize = 2147483647

var (
	// PagesColumns holds the columns for the "pages" table.
	PagesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "kind", Type: field.TypeString, Size: 32},
		{Name: "depth", Type: field.TypeInt},
		{Name: "path", Type: field.TypeString, Size: 255},
		{Name: "url_path", Type: field.TypeString, Size: 512},
		{Name: "slug", Type: field.TypeString, Size: 255},
		{Name: "title", Type: field.TypeString, Size: 255},
		{Name: "seo_title", Type: field.TypeString, Size: 255, Default: ""},
		{Name: "search_description", Type: field.TypeString, Size: textSize},
		{Name: "live", Type: field.TypeBool, Default: false},
		{Name: "private", Type: field.TypeBool, Default: false},
		{Name: "first_published_at", Type: field.TypeTime, Nullable: true},
		{Name: "last_published_at", Type: field.TypeTime, Nullable: true},
		{Name: "go_live_at", Type: field.TypeTime, Nullable: true},
		{Name: "content", Type: field.TypeString, Size: textSize},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "parent_id", Type: field.TypeUint, Nullable: true},
	}
	// PagesTable holds the schema information for the "pages" table.
	PagesTable = &schema.Table{
		Name:       "pages",
		Columns:    PagesColumns,
		PrimaryKey: []*schema.Column{PagesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "pages_pages_children",
				Columns:    []*schema.Column{PagesColumns[17]},
				RefColumns: []*schema.Column{PagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "page_path",
				Unique:  true,
				Columns: []*schema.Column{PagesColumns[3]},
			},
			{
				Name:    "page_parent_id_slug",
				Unique:  true,
				Columns: []*schema.Column{PagesColumns[17], PagesColumns[5]},
			},
			{
				Name:    "page_url_path",
				Unique:  false,
				Columns: []*schema.Column{PagesColumns[4]},
			},
			{
				Name:    "page_kind",
				Unique:  false,
				Columns: []*schema.Column{PagesColumns[1]},
			},
			{
				Name:    "page_go_live_at",
				Unique:  false,
				Columns: []*schema.Column{PagesColumns[13]},
			},
		},
	}
	// PageItemsColumns holds the columns for the "page_items" table.
	PageItemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "collection", Type: field.TypeString, Size: 64},
		{Name: "sort_order", Type: field.TypeInt, Default: 0},
		{Name: "data", Type: field.TypeString, Size: textSize},
		{Name: "page_id", Type: field.TypeUint},
		{Name: "parent_item_id", Type: field.TypeUint, Nullable: true},
	}
	// PageItemsTable holds the schema information for the "page_items" table.
	PageItemsTable = &schema.Table{
		Name:       "page_items",
		Columns:    PageItemsColumns,
		PrimaryKey: []*schema.Column{PageItemsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "page_items_pages_items",
				Columns:    []*schema.Column{PageItemsColumns[4]},
				RefColumns: []*schema.Column{PagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
			{
				Symbol:     "page_items_page_items_children",
				Columns:    []*schema.Column{PageItemsColumns[5]},
				RefColumns: []*schema.Column{PageItemsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "pageitem_page_id_collection_sort_order",
				Unique:  false,
				Columns: []*schema.Column{PageItemsColumns[4], PageItemsColumns[1], PageItemsColumns[2]},
			},
		},
	}
	// ContactSubmissionsColumns holds the columns for the "contact_submissions" table.
	ContactSubmissionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUint, Increment: true},
		{Name: "name", Type: field.TypeString, Size: 255},
		{Name: "email", Type: field.TypeString, Size: 254},
		{Name: "phone", Type: field.TypeString, Size: 20, Default: ""},
		{Name: "company", Type: field.TypeString, Size: 255, Default: ""},
		{Name: "service", Type: field.TypeString, Size: 100, Default: ""},
		{Name: "budget", Type: field.TypeString, Size: 50, Default: ""},
		{Name: "timeline", Type: field.TypeString, Size: 50, Default: ""},
		{Name: "message", Type: field.TypeString, Size: textSize},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "is_responded", Type: field.TypeBool, Default: false},
		{Name: "notes", Type: field.TypeString, Size: textSize},
	}
	// ContactSubmissionsTable holds the schema information for the "contact_submissions" table.
	ContactSubmissionsTable = &schema.Table{
		Name:       "contact_submissions",
		Columns:    ContactSubmissionsColumns,
		PrimaryKey: []*schema.Column{ContactSubmissionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "contactsubmission_created_at",
				Unique:  false,
				Columns: []*schema.Column{ContactSubmissionsColumns[9]},
			},
			{
				Name:    "contactsubmission_email",
				Unique:  false,
				Columns: []*schema.Column{ContactSubmissionsColumns[2]},
			},
			{
				Name:    "contactsubmission_service",
				Unique:  false,
				Columns: []*schema.Column{ContactSubmissionsColumns[5]},
			},
			{
				Name:    "contactsubmission_is_responded",
				Unique:  false,
				Columns: []*schema.Column{ContactSubmissionsColumns[10]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		PagesTable,
		PageItemsTable,
		ContactSubmissionsTable,
	}
)

func init() {
	PagesTable.ForeignKeys[0].RefTable = PagesTable
	PageItemsTable.ForeignKeys[0].RefTable = PagesTable
	PageItemsTable.ForeignKeys[1].RefTable = PageItemsTable
}
