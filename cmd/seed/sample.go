package main

import "github.com/sweetshop/sweet-inventory/internal/core/domain"

var sampleSweets = []domain.Sweet{
	{Name: "Gulab Jamun", Category: "Indian", Price: 12.5, Quantity: 100, ImageURL: "https://i.postimg.cc/NM0c9B47/Gemini-Generated-Image-gyndi2gyndi2gynd-removebg-preview-1.png"},
	{Name: "Rasgulla", Category: "Indian", Price: 10.0, Quantity: 120, ImageURL: "https://i.postimg.cc/MGLSQgrC/Gemini-Generated-Image-jeutk2jeutk2jeut-removebg-preview.png"},
	{Name: "Kaju Katli", Category: "Indian", Price: 25.0, Quantity: 80, ImageURL: "https://i.postimg.cc/JhvfnZsm/Gemini-Generated-Image-2kd6ga2kd6ga2kd6-removebg-preview.png"},
	{Name: "Barfi", Category: "Indian", Price: 18.0, Quantity: 60, ImageURL: "https://i.postimg.cc/BbMN8fmD/Gemini-Generated-Image-jve0tejve0tejve0-removebg-preview.png"},
	{Name: "Ladoo", Category: "Indian", Price: 15.0, Quantity: 150, ImageURL: "https://i.postimg.cc/nL1xhTym/Gemini-Generated-Image-ngz7f5ngz7f5ngz7-removebg-preview.png"},
	{Name: "Jalebi", Category: "Indian", Price: 8.0, Quantity: 200, ImageURL: "https://i.postimg.cc/s2WcYNjB/Gemini-Generated-Image-fkayw1fkayw1fkay-removebg-preview.png"},
	{Name: "Soan Papdi", Category: "Indian", Price: 12.0, Quantity: 90, ImageURL: "https://i.postimg.cc/htsJH82C/Gemini-Generated-Image-43y81l43y81l43y8-removebg-preview.png"},
	{Name: "Peda", Category: "Indian", Price: 14.0, Quantity: 110, ImageURL: "https://i.postimg.cc/qM8d4Wbj/Gemini-Generated-Image-noymnbnoymnbnoym.png"},
	{Name: "Chocolate Truffle", Category: "Western", Price: 30.0, Quantity: 50, ImageURL: "https://i.postimg.cc/Tw9Wzk8w/Gemini-Generated-Image-y3hx76y3hx76y3hx.png"},
	{Name: "Cheesecake Slice", Category: "Western", Price: 28.0, Quantity: 40, ImageURL: "https://i.postimg.cc/t4Hg4Yz7/Gemini-Generated-Image-4c47th4c47th4c47-removebg-preview.png"},
}
