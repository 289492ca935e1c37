/*
 * @Description: 初始化站点示例内容
 * @Author: 安知鱼
 * @Date: 2025-07-21 14:12:05
 * @LastEditTime: 2026-10-14 14:20:37
 * @LastEditors: 安知鱼
 */
package seed

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/anzhiyu-c/fintaa-site/internal/pkg/utils"
	"github.com/anzhiyu-c/fintaa-site/pkg/constant"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/model"
	"github.com/anzhiyu-c/fintaa-site/pkg/domain/repository"
	"github.com/anzhiyu-c/fintaa-site/pkg/service/page"
)

// Seeder 写入示例页面与联系表单提交
type Seeder struct {
	pages    page.Service
	pageRepo repository.PageRepository
	contacts repository.ContactSubmissionRepository
	out      io.Writer
}

func NewSeeder(
	pages page.Service,
	pageRepo repository.PageRepository,
	contacts repository.ContactSubmissionRepository,
	out io.Writer,
) *Seeder {
	return &Seeder{
		pages:    pages,
		pageRepo: pageRepo,
		contacts: contacts,
		out:      out,
	}
}

func (s *Seeder) printf(format string, args ...any) {
	fmt.Fprintf(s.out, format+"\n", args...)
}

// Run 写入完整示例内容，clean 为 true 时先清空根节点以下的页面与全部提交
func (s *Seeder) Run(ctx context.Context, clean bool) error {
	s.printf("Starting database seeding...")

	root, err := s.pageRepo.FindRoot(ctx)
	if err != nil {
		if errors.Is(err, constant.ErrNotFound) {
			s.printf("%s", constant.ErrRootMissing.Error())
			return constant.ErrRootMissing
		}
		return err
	}

	if clean {
		s.printf("Cleaning existing data...")
		if err := s.deleteChildren(ctx, root, ""); err != nil {
			return err
		}
		if _, err := s.contacts.DeleteAll(ctx); err != nil {
			return fmt.Errorf("清空联系表单提交失败: %w", err)
		}
		s.printf("Existing data cleaned.")
	}

	// 删除已有的首页（以及占用 home slug 的其他页面）
	if err := s.deleteChildren(ctx, root, "home"); err != nil {
		return err
	}

	today := model.NewDate(utils.NowInSite())

	s.printf("Creating homepage...")
	home, err := s.create(ctx, root.ID, homePage(), "Fintaa Software House", "home")
	if err != nil {
		return err
	}
	s.printf("Homepage created successfully!")

	steps := []struct {
		label   string
		content model.Content
		title   string
		slug    string
	}{
		{"about page", aboutPage(), "About Us", "about"},
		{"contact page", contactPage(), "Contact Us", "contact"},
		{"services page", servicesPage(), "Our Services", "services"},
		{"team page", teamPage(), "Our Team", "team"},
	}
	for _, step := range steps {
		s.printf("Creating %s...", step.label)
		if _, err := s.create(ctx, home.ID, step.content, step.title, step.slug); err != nil {
			return err
		}
	}

	s.printf("Creating sample contact submissions...")
	for _, sub := range sampleSubmissions() {
		if err := s.contacts.Create(ctx, sub); err != nil {
			return fmt.Errorf("创建示例提交失败: %w", err)
		}
	}
	s.printf("Sample contact submissions created!")

	s.printf("Creating blog page...")
	blog, err := s.create(ctx, home.ID, blogIndexPage(), "Blog", "blog")
	if err != nil {
		return err
	}
	if _, err := s.create(ctx, blog.ID, samplePost(today), "The Future of Web Development in 2025", "future-web-development-2025"); err != nil {
		return err
	}

	s.printf("Creating portfolio page...")
	portfolio, err := s.create(ctx, home.ID, portfolioIndexPage(), "Portfolio", "portfolio")
	if err != nil {
		return err
	}
	for _, p := range sampleProjects(today) {
		if _, err := s.create(ctx, portfolio.ID, p.content, p.title, p.slug); err != nil {
			return err
		}
	}

	s.printf("\n🎉 Database seeding completed successfully!\n")
	return nil
}

func (s *Seeder) create(ctx context.Context, parentID uint, content model.Content, title, slug string) (*model.Document, error) {
	doc, err := s.pages.Create(ctx, parentID, content, model.PageOptions{
		Title:   title,
		Slug:    slug,
		Publish: true,
	})
	if err != nil {
		s.printf("Error creating %s: %v", title, err)
		return nil, fmt.Errorf("创建页面 %q 失败: %w", title, err)
	}
	s.printf("Created %s: %s", doc.Kind, doc.Title)
	return doc, nil
}

// deleteChildren 删除根节点的直接子页面，slug 非空时只删除匹配的页面
func (s *Seeder) deleteChildren(ctx context.Context, root *model.Page, slug string) error {
	children, err := s.pageRepo.FindChildren(ctx, root.ID)
	if err != nil {
		return err
	}
	for _, c := range children {
		if slug != "" && c.Slug != slug {
			continue
		}
		if _, err := s.pages.Delete(ctx, c.ID); err != nil {
			return fmt.Errorf("删除页面 %q 失败: %w", c.Title, err)
		}
		if slug != "" {
			s.printf("Deleted existing page %q", c.Slug)
		}
	}
	return nil
}

// SeedContacts 按邮箱幂等地写入示例提交，返回新建数量
func (s *Seeder) SeedContacts(ctx context.Context) (int, error) {
	s.printf("Creating sample contact submissions...")
	created := 0
	for _, sub := range simpleSubmissions() {
		_, err := s.contacts.FindByEmail(ctx, sub.Email)
		if err == nil {
			s.printf("Contact submission for %s already exists", sub.Name)
			continue
		}
		if !errors.Is(err, constant.ErrNotFound) {
			return created, err
		}
		if err := s.contacts.Create(ctx, sub); err != nil {
			return created, fmt.Errorf("创建示例提交失败: %w", err)
		}
		created++
		s.printf("Created contact submission for %s", sub.Name)
	}
	s.printf("Sample contact submissions created successfully!")
	return created, nil
}
