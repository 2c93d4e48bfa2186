package router

import (
	"pingerd/api"
)

func (r *router) categoriesGet(c api.Context) {
	c.JSON(r.registry.Stats())
}
