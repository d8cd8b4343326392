package handler

import (
	"errors"
	"io"

	"github.com/gofiber/fiber/v2"

	"orator/internal/service"
)

// CreatePage handles POST /books/:bookId/pages. The image arrives as a
// multipart field named "image"; the page is returned while its analysis
// still runs in the background.
func CreatePage(books service.BookService, pages service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		fh, err := c.FormFile("image")
		if err != nil {
			return writeCreateError(c, fiber.StatusBadRequest, "No image file provided")
		}

		// TODO: Validate the user is authenticated
		// TODO: Validate visibility of the book (users can only access their own books)

		bookID := c.Params("bookId")
		if _, err := books.Get(c.UserContext(), bookID); err != nil {
			if errors.Is(err, service.ErrBookNotFound) {
				return writeCreateError(c, fiber.StatusNotFound, "Book not found")
			}
			return writeCreateError(c, fiber.StatusInternalServerError, "An error occurred while creating the page")
		}

		f, err := fh.Open()
		if err != nil {
			return writeCreateError(c, fiber.StatusBadRequest, "No image file provided")
		}
		defer f.Close()

		image, err := io.ReadAll(f)
		if err != nil {
			return writeCreateError(c, fiber.StatusInternalServerError, "An error occurred while creating the page")
		}

		mimeType := fh.Header.Get("Content-Type")
		if mimeType == "" {
			mimeType = "application/octet-stream"
		}

		imageURL, err := pages.UploadImage(c.UserContext(), image, fh.Filename, mimeType)
		if err != nil {
			return writeCreateError(c, fiber.StatusInternalServerError, "An error occurred while creating the page")
		}

		page, err := pages.CreateAndAnalyze(c.UserContext(), bookID, image, mimeType, fh.Filename, imageURL)
		if err != nil {
			return writeCreateError(c, fiber.StatusInternalServerError, "An error occurred while creating the page")
		}

		return c.Status(fiber.StatusCreated).JSON(createdResponse{ID: page.ID})
	}
}

// ListPages handles GET /books/:bookId/pages. Clients poll this endpoint to
// observe pages leaving the processing state.
func ListPages(pages service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// TODO: Validate the user is authenticated
		// TODO: Validate visibility of the book (users can only access their own books)

		result, err := pages.ListByBook(c.UserContext(), c.Params("bookId"))
		if err != nil {
			return writeError(c, fiber.StatusInternalServerError, "An error occurred while fetching the pages")
		}

		return c.JSON(result)
	}
}

// GetPage handles GET /pages/:pageId, a single-page poll for clients that
// track one upload at a time.
func GetPage(pages service.PageService) fiber.Handler {
	return func(c *fiber.Ctx) error {
		// TODO: Validate the user is authenticated

		page, err := pages.Get(c.UserContext(), c.Params("pageId"))
		if err != nil {
			if errors.Is(err, service.ErrPageNotFound) {
				return writeError(c, fiber.StatusNotFound, "Page not found")
			}
			return writeError(c, fiber.StatusInternalServerError, "An error occurred while fetching the page")
		}

		return c.JSON(page)
	}
}
