// Package facetlist embeds facetlist in a Go program: items with lists over
// indexed hashes in Valkey or Redis, preset filters pinned on those lists and
// paginated list execution.
//
//	client, _ := facetlist.New(ctx,
//	    facetlist.WithValkey("localhost:6379", ""),
//	    facetlist.WithSource(facetlist.Source{
//	        SearchID: "article_list", EntityType: "node", Bundle: "article",
//	        Fields: []facetlist.Field{{Name: "status", Type: facetlist.FieldTag}},
//	        Facets: []facetlist.Facet{{ID: "status", Label: "Status"}},
//	    }),
//	)
//	it, _ := client.Items().Create(ctx, "node", "landing", "Latest",
//	    &facetlist.ListRef{EntityType: "node", Bundle: "article",
//	        PresetFilters: facetlist.Filters{"status": {"published"}}})
//	page, _ := client.Items().List(ctx, it.ID, 0, nil)
package facetlist
